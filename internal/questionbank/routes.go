package questionbank

import "github.com/go-chi/chi/v5"

func Routes(r chi.Router, h *Handler) {
	r.Post("/generate-questions", h.GenerateQuestions)
	r.Post("/upload-json", h.UploadJSON)
}
