package predict

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"gateapp/internal/llm"
)

// products is the fixed onboard catalog the model is asked to forecast.
var products = []string{"Galletas Oreo", "Agua Mineral 500ml", "Sandwich Club"}

var trends = []string{"up", "down", "steady"}

const fallbackReport = "Este reporte es genérico debido a un error inesperado.\n\n" +
	"Predicciones simuladas por respaldo, basadas en patrones históricos aleatorios."

type Service struct {
	llm llm.Client
	rng *rand.Rand
}

func NewService(client llm.Client) *Service {
	return &Service{
		llm: client,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand overrides the fallback randomness source (tests).
func (s *Service) WithRand(rng *rand.Rand) *Service {
	s.rng = rng
	return s
}

// Predict asks the LLM for a demand forecast. Any failure (transport,
// timeout, malformed JSON) degrades to a locally generated random forecast
// rather than an error: the endpoint always answers.
func (s *Service) Predict(ctx context.Context, p Params) Result {
	raw, err := s.llm.Complete(ctx, llm.CompletionRequest{
		System:      systemPrompt,
		Prompt:      buildPrompt(p, products),
		Temperature: 0.4,
		MaxTokens:   850,
	})
	if err != nil {
		log.Printf("PREDICT_FALLBACK reason=%v", err)
		return s.fallback()
	}

	var parsed struct {
		Predictions []Prediction `json:"predictions"`
		Report      string       `json:"report"`
	}
	if err := json.Unmarshal([]byte(llm.CleanResponse(raw)), &parsed); err != nil {
		log.Printf("PREDICT_FALLBACK reason=invalid json: %v", err)
		return s.fallback()
	}
	if len(parsed.Predictions) == 0 {
		log.Print("PREDICT_FALLBACK reason=empty predictions")
		return s.fallback()
	}

	return Result{
		Predictions: parsed.Predictions,
		Report:      formatReport(parsed.Report),
	}
}

func (s *Service) fallback() Result {
	predictions := make([]Prediction, 0, len(products))
	for _, product := range products {
		predictions = append(predictions, Prediction{
			Product:         product,
			PredictedDemand: 85 + s.rng.Intn(66), // 85..150
			Trend:           trends[s.rng.Intn(len(trends))],
		})
	}

	return Result{
		Predictions: predictions,
		Report:      fallbackReport,
	}
}
