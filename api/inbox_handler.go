package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmorel/portfolio-cms-backend/database"
	"github.com/jmorel/portfolio-cms-backend/errs"
	"github.com/jmorel/portfolio-cms-backend/models"
)

type inboxHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.ContactMessageRepo
}

func newInboxHandler(messageRepo *database.ContactMessageRepo) inboxHandler {
	logger := log.With().Str("handlerName", "inboxHandler").Logger()

	return inboxHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
	}
}

// MessageStatusInput carries an inbox status transition
type MessageStatusInput struct {
	Status models.MessageStatus `json:"status"`
}

// getAllMessages retrieves the inbox, newest first
// @Summary Get all contact messages
// @Tags Inbox
// @Produce json
// @Success 200 {array} models.ContactMessage "Contact messages"
// @Router /messages [get]
func (h inboxHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact messages", "contact_messages", err))
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}

// getMessage retrieves a single contact message
// @Summary Get contact message
// @Tags Inbox
// @Produce json
// @Param messageID path string true "Message ID" format(uuid)
// @Success 200 {object} models.ContactMessage "Contact message"
// @Failure 404 {object} ErrorResponse "Not Found - Message not found"
// @Router /message/{messageID} [get]
func (h inboxHandler) getMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		message, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact message", "contact_message", err))
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

// updateMessageStatus moves a message between NEW, READ and ARCHIVED
// @Summary Update message status
// @Tags Inbox
// @Accept json
// @Produce json
// @Param messageID path string true "Message ID" format(uuid)
// @Param status body MessageStatusInput true "New status"
// @Success 200 {object} models.ContactMessage "Updated message"
// @Failure 400 {object} ErrorResponse "Bad Request - Unknown status"
// @Failure 404 {object} ErrorResponse "Not Found - Message not found"
// @Router /message/{messageID}/status [patch]
func (h inboxHandler) updateMessageStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		var in MessageStatusInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if !in.Status.Valid() {
			h.responder.WriteError(w, errs.NewFieldError(http.StatusBadRequest, "status", "unknown message status"))
			return
		}

		if _, err := h.messageRepo.FindByID(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact message", "contact_message", err))
			return
		}

		if err := h.messageRepo.UpdateStatus(messageID, in.Status); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update contact message", "contact_message", err))
			return
		}

		message, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact message", "contact_message", err))
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

// deleteMessage permanently removes a contact message
// @Summary Delete contact message
// @Description Contact messages are hard-deleted; archiving covers retention
// @Tags Inbox
// @Produce json
// @Param messageID path string true "Message ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Message not found"
// @Router /message/{messageID} [delete]
func (h inboxHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		if _, err := h.messageRepo.FindByID(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact message", "contact_message", err))
			return
		}

		if err := h.messageRepo.Delete(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete contact message", "contact_message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}
