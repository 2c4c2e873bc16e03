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

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Err(err).Str("func", "*Handler.createClient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ClientService.CreateClient(r.Context(), client)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createClient").Msg("error creating client")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	clients, err := h.services.ClientService.ListClients(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listClients").Msg("error listing clients")
		writeError(w, err)
		return
	}

	if clients == nil {
		clients = []models.Client{}
	}

	utils.WriteJSON(w, clients, http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	clientID, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteClient").Msg("invalid client id in path")
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	if err := h.services.ClientService.DeleteClient(r.Context(), clientID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteClient").Int64("client_id", clientID).Msg("error deleting client")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
