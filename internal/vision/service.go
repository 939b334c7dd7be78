package vision

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Recognizer is the external text-recognition capability: image bytes in,
// raw text out. Implementations may return an empty string on failure; the
// service treats empty text as "nothing extracted", not a crash.
type Recognizer interface {
	RecognizeText(ctx context.Context, image []byte) (string, error)
}

// ExtractionResult is the response unit for one expiry-date extraction.
// All failure is expressed through Success=false plus Error; nothing
// propagates past this boundary.
type ExtractionResult struct {
	Success         bool            `json:"success"`
	ExtractedText   *string         `json:"extracted_text"`
	ExpiryDate      *string         `json:"expiry_date"`
	LotNumber       *string         `json:"lot_number"`
	Confidence      *float64        `json:"confidence"`
	DetectedFormats []string        `json:"detected_formats"`
	AllDatesFound   []DateCandidate `json:"all_dates_found"`
	Error           string          `json:"error,omitempty"`
}

// LotResult is the response for lot-number-only extraction.
type LotResult struct {
	Success       bool    `json:"success"`
	LotNumber     *string `json:"lot_number"`
	ExtractedText *string `json:"extracted_text"`
	Error         string  `json:"error,omitempty"`
}

type Service struct {
	recognizer Recognizer
	now        func() time.Time
}

func NewService(recognizer Recognizer) *Service {
	return &Service{
		recognizer: recognizer,
		now:        time.Now,
	}
}

// WithClock overrides the wall clock used for year-plausibility scoring.
// Tests use this to pin "current year".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ProcessExpiryImage runs the full pipeline: OCR, text cleaning, date
// matching, scoring, best-candidate selection, lot extraction.
func (s *Service) ProcessExpiryImage(ctx context.Context, image []byte) (result ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ExtractionResult{
				Success: false,
				Error:   fmt.Sprintf("error processing image: %v", r),
			}
		}
	}()

	text := s.recognizeAndClean(ctx, image)
	if text == "" {
		return ExtractionResult{
			Success: false,
			Error:   "could not extract text from image",
		}
	}

	candidates := ExtractDates(text, s.now().Year())
	if len(candidates) == 0 {
		return ExtractionResult{
			Success:       false,
			ExtractedText: &text,
			Error:         "no dates found in text",
			AllDatesFound: []DateCandidate{},
		}
	}

	best := candidates[0]

	formats := make([]string, 0, 3)
	for _, c := range candidates {
		if len(formats) == 3 {
			break
		}
		formats = append(formats, string(c.PatternUsed))
	}

	result = ExtractionResult{
		Success:         true,
		ExtractedText:   &text,
		ExpiryDate:      &best.DateValue,
		Confidence:      &best.Confidence,
		DetectedFormats: formats,
		AllDatesFound:   candidates,
	}
	if lot, ok := ExtractLot(text); ok {
		result.LotNumber = &lot
	}
	return result
}

// ExtractLotFromImage runs OCR and returns only the lot number.
func (s *Service) ExtractLotFromImage(ctx context.Context, image []byte) (result LotResult) {
	defer func() {
		if r := recover(); r != nil {
			result = LotResult{
				Success: false,
				Error:   fmt.Sprintf("error processing image: %v", r),
			}
		}
	}()

	text := s.recognizeAndClean(ctx, image)
	if text == "" {
		return LotResult{
			Success: false,
			Error:   "could not extract text from image",
		}
	}

	lot, ok := ExtractLot(text)
	if !ok {
		return LotResult{
			Success:       false,
			ExtractedText: &text,
			Error:         "no lot number found",
		}
	}

	return LotResult{
		Success:       true,
		LotNumber:     &lot,
		ExtractedText: &text,
	}
}

func (s *Service) recognizeAndClean(ctx context.Context, image []byte) string {
	raw, err := s.recognizer.RecognizeText(ctx, image)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(CleanText(raw))
}
