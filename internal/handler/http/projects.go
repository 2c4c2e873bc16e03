package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/internal/utils"
	"github.com/MKhiriev/freelance-hub/models"
)

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Str("func", "*Handler.createProject").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ProjectService.CreateProject(r.Context(), project)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createProject").Int64("client_id", project.ClientID).Msg("error creating project")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProjects").Msg("error listing projects")
		writeError(w, err)
		return
	}

	if projects == nil {
		projects = []models.Project{}
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) toggleProjectStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.toggleProjectStatus").Msg("invalid project id in path")
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProjectService.ToggleProjectStatus(r.Context(), projectID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.toggleProjectStatus").Int64("project_id", projectID).Msg("error toggling project status")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteProject").Msg("invalid project id in path")
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	if err := h.services.ProjectService.DeleteProject(r.Context(), projectID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteProject").Int64("project_id", projectID).Msg("error deleting project")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
