package employees

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(NewMemoryRepository()))

	r := gin.New()
	r.POST("/employees", handler.Create)
	r.GET("/employees", handler.List)
	r.GET("/employees/:id", handler.Get)
	r.PUT("/employees/:id", handler.Update)
	r.DELETE("/employees/:id", handler.Delete)

	return r
}

func createEmployee(t *testing.T, r *gin.Engine, name string) Employee {
	t.Helper()

	payload, _ := json.Marshal(map[string]string{
		"name": name,
		"role": "assembler",
		"site": "MTY",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var e Employee
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("create: bad response body: %v", err)
	}

	return e
}

func TestEmployeeLifecycle(t *testing.T) {
	r := newTestRouter()

	ana := createEmployee(t, r, "Ana Torres")
	createEmployee(t, r, "Bruno Díaz")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	r.ServeHTTP(w, req)

	var list []Employee
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("list: bad response body: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(list))
	}
	if list[0].Name != "Ana Torres" {
		t.Fatalf("expected name ordering, got %q first", list[0].Name)
	}

	payload := []byte(`{"role": "supervisor"}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/employees/"+ana.ID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", w.Code)
	}

	var updated Employee
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("update: bad response body: %v", err)
	}
	if updated.Role != "supervisor" || updated.Name != "Ana Torres" {
		t.Fatalf("unexpected employee after update: %+v", updated)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/employees/"+ana.ID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/employees/"+ana.ID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestEmployeeValidation(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader([]byte(`{"name":"Solo"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
}
