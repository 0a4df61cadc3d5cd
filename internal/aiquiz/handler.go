package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

type Handler struct {
	service      Service
	maxBodyBytes int64
}

func NewHandler(s Service, maxBodyBytes int64) *Handler {
	return &Handler{service: s, maxBodyBytes: maxBodyBytes}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid quiz request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	questions, err := h.service.GenerateQuiz(r.Context(), req.Topics)
	if err != nil {
		status := apperr.Status(err)
		if status == http.StatusBadRequest {
			config.Error(w, status, err.Error())
			return
		}
		log.WithError(err).Error("Failed to generate quiz")
		config.Error(w, http.StatusInternalServerError, "Failed to generate quiz.")
		return
	}

	config.JSON(w, http.StatusOK, QuizResponse{Questions: questions})
}
