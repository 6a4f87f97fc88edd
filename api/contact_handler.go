package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmorel/portfolio-cms-backend/database"
	"github.com/jmorel/portfolio-cms-backend/errs"
	"github.com/jmorel/portfolio-cms-backend/models"
	"github.com/jmorel/portfolio-cms-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.ContactMessageRepo
	notifier    *services.Notifier
}

func newContactHandler(messageRepo *database.ContactMessageRepo, notifier *services.Notifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

// submitMessage accepts a message from the public contact form
// @Summary Submit a contact message
// @Description Stores a visitor message and notifies the site owner on configured channels
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body ContactInput true "Contact message"
// @Success 201 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failed"
// @Router /contact [post]
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in ContactInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := in.Validate(); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		message := &models.ContactMessage{
			Name:    in.Name,
			Email:   in.Email,
			Subject: in.Subject,
			Message: in.Message,
			Status:  models.MessageNew,
		}
		if err := h.messageRepo.Add(message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact message", "contact_message", err))
			return
		}

		// Notifications are best-effort; the visitor never waits on them.
		go h.notifier.NotifyNewMessage(message)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message received",
		})
	}
}
