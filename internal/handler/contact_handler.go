package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DevanshuTiwaskar/portfolio/internal/model"
	"github.com/DevanshuTiwaskar/portfolio/internal/service"
)

const maxBodyBytes = 64 << 10

// Response texts shown by the frontend.
const (
	msgSent           = "Message sent successfully!"
	msgPartiallySent  = "Message received, but some notification emails could not be sent."
	msgFieldsRequired = "All fields are required"
	msgInvalidBody    = "Invalid request body"
	msgFailed         = "Internal Server Error: Failed to send message."
)

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Submit handles POST /api/contact.
// name, email and message are required; type defaults to "General Inquiry".
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgInvalidBody})
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Type:    req.Type,
	}

	res, err := h.contactService.Submit(r.Context(), msg)
	if err != nil {
		var verr *service.ValidationError
		var nerr *service.NotificationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgFieldsRequired})
		case errors.As(err, &nerr):
			slog.Error("contact notification failed", "message_id", res.Message.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: msgFailed})
		default:
			slog.Error("contact form submission failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: msgFailed})
		}
		return
	}

	if len(res.Failures()) > 0 {
		writeJSON(w, http.StatusOK, messageResponse{Message: msgPartiallySent})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msgSent})
}
