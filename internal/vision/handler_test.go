package vision

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupVisionRouter(text string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := newTestService(text, nil)
	handler := NewHandler(service, nil)

	api := r.Group("/api/vision")
	{
		api.POST("/expiry-date", handler.ExtractExpiryDate)
		api.POST("/lot-number", handler.ExtractLotNumber)
		api.GET("/health", handler.Health)
	}

	return r
}

func imageRequest(t *testing.T, url, contentType string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="label.png"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatal(err)
	}
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestExpiryDateEndpoint(t *testing.T) {
	router := setupVisionRouter("EXP: 15/08/2026 LOT: A1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, imageRequest(t, "/api/vision/expiry-date", "image/png"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result ExtractionResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
	if result.ExpiryDate == nil || *result.ExpiryDate != "2026-08-15" {
		t.Fatalf("expected 2026-08-15, got %v", result.ExpiryDate)
	}
}

func TestExpiryDateEndpointRejectsUnsupportedType(t *testing.T) {
	router := setupVisionRouter("EXP: 15/08/2026")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, imageRequest(t, "/api/vision/expiry-date", "application/pdf"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestExpiryDateEndpointRequiresImage(t *testing.T) {
	router := setupVisionRouter("EXP: 15/08/2026")

	req := httptest.NewRequest(http.MethodPost, "/api/vision/expiry-date", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLotNumberEndpoint(t *testing.T) {
	router := setupVisionRouter("LOT: B775")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, imageRequest(t, "/api/vision/lot-number", "image/jpeg"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result LotResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.LotNumber == nil || *result.LotNumber != "B775" {
		t.Fatalf("expected B775, got %v", result.LotNumber)
	}
}

func TestLotNumberEndpointNotFound(t *testing.T) {
	router := setupVisionRouter("nothing here")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, imageRequest(t, "/api/vision/lot-number", "image/png"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestVisionHealth(t *testing.T) {
	router := setupVisionRouter("")

	req := httptest.NewRequest(http.MethodGet, "/api/vision/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
