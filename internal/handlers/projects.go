package handlers

import (
	"encoding/json"
	"net/http"

	"trendpulse-backend/internal/models"
	"trendpulse-backend/internal/store"
	"trendpulse-backend/internal/ws"
)

type ProjectHandler struct {
	store *store.Store
	hub   *ws.Hub
}

func NewProjectHandler(store *store.Store, hub *ws.Hub) *ProjectHandler {
	return &ProjectHandler{store: store, hub: hub}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListProjects(r.Context()))
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid project ID", r))
		return
	}

	project, ok := h.store.GetProjectByID(r.Context(), id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Project not found", r))
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.InsertProject
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", validationFields(err), r))
		return
	}

	project := h.store.CreateProject(r.Context(), req)
	h.hub.Publish("project.created", project)
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid project ID", r))
		return
	}

	var req models.UpdateProject
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", validationFields(err), r))
		return
	}

	project, ok := h.store.UpdateProject(r.Context(), id, req)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Project not found", r))
		return
	}
	h.hub.Publish("project.updated", project)
	writeJSON(w, http.StatusOK, project)
}
