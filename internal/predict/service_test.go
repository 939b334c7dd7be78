package predict

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gateapp/internal/llm"

	"github.com/gin-gonic/gin"
)

// fakeLLM returns a canned response or error.
type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	return f.response, f.err
}

var testParams = Params{
	OriginCountry:       "Mexico",
	FlightDuration:      "02:30",
	TimeOfDay:           "morning",
	ConfirmedPassengers: 120,
}

func TestPredictParsesModelResponse(t *testing.T) {
	client := &fakeLLM{response: `{
		"predictions": [
			{"product": "Galletas Oreo", "predicted_demand": 95, "trend": "up"}
		],
		"report": "Demanda estable."
	}`}

	result := NewService(client).Predict(context.Background(), testParams)

	if len(result.Predictions) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(result.Predictions))
	}
	if result.Predictions[0].PredictedDemand != 95 {
		t.Errorf("expected demand 95, got %d", result.Predictions[0].PredictedDemand)
	}
	if result.Report != "Demanda estable." {
		t.Errorf("unexpected report: %q", result.Report)
	}
}

func TestPredictHandlesFencedJSON(t *testing.T) {
	client := &fakeLLM{response: "```json\n{\"predictions\": [{\"product\": \"x\", \"predicted_demand\": 10, \"trend\": \"steady\"}], \"report\": \"ok\"}\n```"}

	result := NewService(client).Predict(context.Background(), testParams)

	if len(result.Predictions) != 1 || result.Predictions[0].PredictedDemand != 10 {
		t.Fatalf("fenced JSON not parsed: %+v", result)
	}
}

func TestPredictFallsBackOnError(t *testing.T) {
	client := &fakeLLM{err: errors.New("timeout")}
	service := NewService(client).WithRand(rand.New(rand.NewSource(1)))

	result := service.Predict(context.Background(), testParams)

	if len(result.Predictions) != len(products) {
		t.Fatalf("fallback should cover every product, got %d", len(result.Predictions))
	}
	for _, p := range result.Predictions {
		if p.PredictedDemand < 85 || p.PredictedDemand > 150 {
			t.Errorf("fallback demand out of range: %d", p.PredictedDemand)
		}
		switch p.Trend {
		case "up", "down", "steady":
		default:
			t.Errorf("unexpected trend %q", p.Trend)
		}
	}
	if result.Report == "" {
		t.Error("fallback should still carry a report")
	}
}

func TestPredictFallsBackOnMalformedJSON(t *testing.T) {
	client := &fakeLLM{response: "sorry, I cannot help with that"}
	service := NewService(client).WithRand(rand.New(rand.NewSource(1)))

	result := service.Predict(context.Background(), testParams)

	if len(result.Predictions) != len(products) {
		t.Fatalf("expected fallback predictions, got %+v", result)
	}
}

func TestHumanDuration(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"02:30", "2 horas y 30 minutos"},
		{"01:00", "1 hora"},
		{"00:45", "45 minutos"},
		{"bogus", "duración desconocida"},
		{"00:00", "duración desconocida"},
	}

	for _, tc := range cases {
		if got := humanDuration(tc.in); got != tc.want {
			t.Errorf("humanDuration(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatReportUnescapesNewlines(t *testing.T) {
	got := formatReport(`linea uno\nlinea dos`)
	if got != "linea uno\nlinea dos" {
		t.Fatalf("escaped newlines not expanded: %q", got)
	}
}

func TestPredictEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(&fakeLLM{response: `{"predictions": [{"product": "x", "predicted_demand": 10, "trend": "up"}], "report": "r"}`})
	r.GET("/predict", NewHandler(service).GetPredictions)

	req := httptest.NewRequest(http.MethodGet,
		"/predict?origin_country=Mexico&flight_duration=02:30&time_of_day=morning&confirmed_passengers=120", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "predicted_demand") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPredictEndpointRequiresParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/predict", NewHandler(NewService(&fakeLLM{})).GetPredictions)

	req := httptest.NewRequest(http.MethodGet, "/predict?origin_country=Mexico", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
