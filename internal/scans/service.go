package scans

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"gateapp/internal/storage"
)

const expiryLayout = "2006-01-02"

// Expiry dates closer than this are flagged StatusWarning.
const warningWindow = 7 * 24 * time.Hour

type Service struct {
	repo     Repository
	uploader storage.Uploader
	now      func() time.Time
}

func NewService(repo Repository, uploader storage.Uploader) *Service {
	return &Service{repo: repo, uploader: uploader, now: time.Now}
}

// WithClock overrides time lookup, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// --------------------------------------------------
// Record a scan
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, req CreateRequest, image io.Reader, imageType string) (*Scan, error) {
	if req.ExpiryDate != nil {
		if _, err := time.Parse(expiryLayout, *req.ExpiryDate); err != nil {
			return nil, fmt.Errorf("invalid expiry_date, expected YYYY-MM-DD")
		}
	}

	status := req.Status
	if status == "" {
		status = s.deriveStatus(req.ExpiryDate)
	} else if status != StatusValid && status != StatusWarning && status != StatusExpired {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	scannedAt := s.now().UTC()
	if req.ScannedAt != nil {
		scannedAt = req.ScannedAt.UTC()
	}

	scan := &Scan{
		ID:              uuid.NewString(),
		ProductID:       req.ProductID,
		Barcode:         req.Barcode,
		ExpiryDate:      req.ExpiryDate,
		LotNumber:       req.LotNumber,
		ScannedAt:       scannedAt,
		EmployeeID:      req.EmployeeID,
		DrawerID:        req.DrawerID,
		FlightID:        req.FlightID,
		Status:          status,
		ConfidenceScore: req.ConfidenceScore,
	}

	if image != nil && s.uploader != nil {
		key := fmt.Sprintf("scans/%s.%s", scan.ID, imageExtension(imageType))
		url, err := s.uploader.Upload(ctx, key, image, imageType)
		if err != nil {
			return nil, fmt.Errorf("upload scan image: %w", err)
		}
		scan.ImageURL = url
	}

	if err := s.repo.Create(ctx, scan); err != nil {
		return nil, err
	}

	return scan, nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]Scan, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*Scan, error) {
	return s.repo.GetByID(ctx, id)
}

// deriveStatus classifies a scan by how close its expiry date is.
// Dates are compared at day granularity in UTC.
func (s *Service) deriveStatus(expiryDate *string) string {
	if expiryDate == nil {
		return StatusValid
	}

	expiry, err := time.Parse(expiryLayout, *expiryDate)
	if err != nil {
		return StatusValid
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if expiry.Before(today) {
		return StatusExpired
	}
	if expiry.Sub(today) <= warningWindow {
		return StatusWarning
	}
	return StatusValid
}

func imageExtension(contentType string) string {
	switch contentType {
	case "image/png":
		return "png"
	default:
		return "jpg"
	}
}
