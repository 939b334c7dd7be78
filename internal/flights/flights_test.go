package flights

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter() (*gin.Engine, *MemoryRepository) {
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepository()
	handler := NewHandler(NewService(repo))

	r := gin.New()
	r.POST("/flights", handler.Create)
	r.GET("/flights", handler.List)
	r.GET("/flights/:id", handler.Get)
	r.PUT("/flights/:id", handler.Update)
	r.DELETE("/flights/:id", handler.Delete)

	return r, repo
}

func createFlight(t *testing.T, r *gin.Engine) Flight {
	t.Helper()

	body := map[string]any{
		"flight_number": "AM0403",
		"flight_type":   "International",
		"quantity":      12,
		"arrival_time":  "2026-09-01T14:30:00Z",
		"route":         "MTY-MEX",
	}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/flights", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var f Flight
	if err := json.Unmarshal(w.Body.Bytes(), &f); err != nil {
		t.Fatalf("create: bad response body: %v", err)
	}
	if f.ID == "" {
		t.Fatal("create: expected a generated id")
	}

	return f
}

func TestCreateAndGetFlight(t *testing.T) {
	r, _ := newTestRouter()

	created := createFlight(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/"+created.ID, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got Flight
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if got.FlightNumber != "AM0403" || got.Route != "MTY-MEX" {
		t.Fatalf("unexpected flight: %+v", got)
	}
	if !got.ArrivalTime.Equal(time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected arrival_time: %v", got.ArrivalTime)
	}
}

func TestCreateFlightValidation(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/flights", bytes.NewReader([]byte(`{"flight_number":"AM1"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
}

func TestUpdateFlightPartial(t *testing.T) {
	r, _ := newTestRouter()
	created := createFlight(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/flights/"+created.ID, bytes.NewReader([]byte(`{"quantity": 20}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var got Flight
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if got.Quantity != 20 {
		t.Fatalf("expected quantity 20, got %d", got.Quantity)
	}
	if got.FlightNumber != "AM0403" {
		t.Fatalf("untouched field changed: %q", got.FlightNumber)
	}
}

func TestFlightNotFound(t *testing.T) {
	r, _ := newTestRouter()

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/flights/9f1c1c0e-0000-0000-0000-000000000000", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", method, w.Code)
		}
	}
}

func TestDeleteFlight(t *testing.T) {
	r, repo := newTestRouter()
	created := createFlight(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/flights/"+created.ID, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if _, err := repo.GetByID(req.Context(), created.ID); err != ErrNotFound {
		t.Fatalf("expected flight gone, got %v", err)
	}
}
