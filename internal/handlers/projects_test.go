package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"trendpulse-backend/internal/models"
	"trendpulse-backend/internal/store"
	"trendpulse-backend/internal/ws"
)

func newProjectMux(st *store.Store) http.Handler {
	h := NewProjectHandler(st, ws.NewHub(zap.NewNop()))
	r := chi.NewRouter()
	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
	})
	return r
}

func doJSON(t *testing.T, mux http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestCreateProject_InvalidStatusRejected(t *testing.T) {
	st := store.New()
	mux := newProjectMux(st)

	rr := doJSON(t, mux, http.MethodPost, "/api/projects", map[string]interface{}{
		"title":  "Demo",
		"status": "bogus",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR, got %q", resp.Error.Code)
	}
	if _, ok := resp.Error.Fields["status"]; !ok {
		t.Errorf("Expected field error for status, got %v", resp.Error.Fields)
	}

	// The rejected request must not have created a row.
	if got := len(st.ListProjects(context.Background())); got != 0 {
		t.Errorf("Expected 0 projects after rejected create, got %d", got)
	}
}

func TestCreateProject_MissingFieldsRejected(t *testing.T) {
	st := store.New()
	mux := newProjectMux(st)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing title", map[string]interface{}{"status": "planning"}},
		{"missing status", map[string]interface{}{"title": "Demo"}},
		{"empty body", map[string]interface{}{}},
		{"progress out of range", map[string]interface{}{"title": "Demo", "status": "planning", "progress": 150}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, mux, http.MethodPost, "/api/projects", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rr.Code)
			}
		})
	}
}

func TestCreateProject_AppliesDefaults(t *testing.T) {
	st := store.New()
	mux := newProjectMux(st)

	rr := doJSON(t, mux, http.MethodPost, "/api/projects", map[string]interface{}{
		"title":  "Demo",
		"status": "planning",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var p models.Project
	if err := json.NewDecoder(rr.Body).Decode(&p); err != nil {
		t.Fatalf("Failed to decode project: %v", err)
	}
	if p.ID == 0 {
		t.Error("Expected assigned id")
	}
	if p.Progress != 0 {
		t.Errorf("Expected default progress 0, got %d", p.Progress)
	}
	if p.Description != nil {
		t.Errorf("Expected null description, got %q", *p.Description)
	}
}

func TestGetProject_NotFoundAndBadID(t *testing.T) {
	mux := newProjectMux(store.New())

	rr := doJSON(t, mux, http.MethodGet, "/api/projects/999", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for missing project, got %d", rr.Code)
	}

	rr = doJSON(t, mux, http.MethodGet, "/api/projects/abc", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric id, got %d", rr.Code)
	}
}

func TestListProjects_EmptyIsArray(t *testing.T) {
	mux := newProjectMux(store.New())

	rr := doJSON(t, mux, http.MethodGet, "/api/projects", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Errorf("Expected empty JSON array, got %q", got)
	}
}

func TestProjectLifecycle(t *testing.T) {
	st := store.New()
	mux := newProjectMux(st)

	// Create
	rr := doJSON(t, mux, http.MethodPost, "/api/projects", map[string]interface{}{
		"title":  "Demo",
		"status": "planning",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("Create: expected 201, got %d", rr.Code)
	}
	var created models.Project
	json.NewDecoder(rr.Body).Decode(&created)

	// Read back: identical object
	rr = doJSON(t, mux, http.MethodGet, "/api/projects/1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Get: expected 200, got %d", rr.Code)
	}
	var fetched models.Project
	json.NewDecoder(rr.Body).Decode(&fetched)
	if fetched.ID != created.ID || fetched.Title != created.Title || fetched.Status != created.Status {
		t.Errorf("Fetched project differs from created: %+v vs %+v", fetched, created)
	}

	// Partial update
	rr = doJSON(t, mux, http.MethodPatch, "/api/projects/1", map[string]interface{}{
		"status":   "completed",
		"progress": 100,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Update: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var updated models.Project
	json.NewDecoder(rr.Body).Decode(&updated)
	if updated.Status != "completed" || updated.Progress != 100 {
		t.Errorf("Update not applied: %+v", updated)
	}
	if updated.Title != "Demo" {
		t.Errorf("Update clobbered title: %q", updated.Title)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("Expected updatedAt to advance")
	}

	// Still there afterwards; no deletion exists.
	rr = doJSON(t, mux, http.MethodGet, "/api/projects/1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Re-get: expected 200, got %d", rr.Code)
	}

	// Update of a missing project is a 404, not a validation error.
	rr = doJSON(t, mux, http.MethodPatch, "/api/projects/42", map[string]interface{}{"progress": 10})
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 updating missing project, got %d", rr.Code)
	}
}
