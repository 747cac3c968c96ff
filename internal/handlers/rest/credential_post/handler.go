package credential_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/credential"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var credentialDTO dto.CredentialCreateRequest
	err := json.NewDecoder(r.Body).Decode(&credentialDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	credentialModify := entities.CredentialModify{
		Name:   pointer.To(credentialDTO.Name),
		Role:   pointer.To(entities.RoleType(credentialDTO.Role)),
		Secret: pointer.To(credentialDTO.Secret),
	}

	id, err := h.service.RotateCredential(r.Context(), credentialModify)
	if err != nil {
		switch {
		case errors.Is(err, credential.ErrMissingRequiredFields),
			errors.Is(err, credential.ErrInvalidName),
			errors.Is(err, credential.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CredentialCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
