package questionbank

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/saulo-duarte/quizgen-lambda/internal/apperr"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

const uploadField = "json-file"

type Handler struct {
	service        Service
	maxBodyBytes   int64
	maxUploadBytes int64
}

func NewHandler(s Service, maxBodyBytes, maxUploadBytes int64) *Handler {
	return &Handler{
		service:        s,
		maxBodyBytes:   maxBodyBytes,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid generate request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		status := apperr.Status(err)
		if status == http.StatusBadRequest {
			config.Error(w, status, err.Error())
			return
		}
		log.WithError(err).Error("Failed to generate questions")
		config.Error(w, http.StatusInternalServerError, "Failed to generate questions: "+err.Error())
		return
	}

	config.JSON(w, http.StatusOK, GenerateResponse{Questions: questions})
}

func (h *Handler) UploadJSON(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		if isTooLarge(err) {
			config.Error(w, http.StatusRequestEntityTooLarge, "uploaded file is too large")
			return
		}
		log.WithError(err).Warn("Invalid multipart upload")
		config.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer r.MultipartForm.RemoveAll()

	f, _, err := r.FormFile(uploadField)
	if err != nil {
		config.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		config.Error(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	questions, err := h.service.ImportQuestions(r.Context(), data)
	if err != nil {
		config.Error(w, apperr.Status(err), err.Error())
		return
	}

	config.JSON(w, http.StatusOK, UploadResponse{Questions: questions})
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || errors.Is(err, apperr.ErrTooLarge)
}
