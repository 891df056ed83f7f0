package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/api/middleware"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type SubmitMessageRequest struct {
	Name    string              `json:"name" validate:"required"`
	Email   string              `json:"email" validate:"required,email"`
	Phone   *string             `json:"phone"`
	Company *string             `json:"company"`
	Subject string              `json:"subject" validate:"required"`
	Message string              `json:"message" validate:"required"`
	Type    *domain.MessageType `json:"type"`
}

// Submit accepts a contact-form message from the public storefront.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := h.messageService.Submit(r.Context(), service.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Subject: req.Subject,
		Body:    req.Message,
		Type:    req.Type,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.MessageFilter{Search: q.Get("search")}

	if v := q.Get("status"); v != "" {
		status := domain.MessageStatus(v)
		filter.Status = &status
	}
	if v := q.Get("type"); v != "" {
		msgType := domain.MessageType(v)
		filter.Type = &msgType
	}
	if v := q.Get("starred"); v != "" {
		starred := v == "true"
		filter.IsStarred = &starred
	}

	messages, err := h.messageService.List(r.Context(), filter)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// Get marks the message read as a side effect of opening it.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	msg, err := h.messageService.MarkRead(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

type StarMessageRequest struct {
	Starred bool `json:"starred"`
}

func (h *MessageHandler) SetStarred(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	var req StarMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.messageService.SetStarred(r.Context(), id, req.Starred)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

type ReplyMessageRequest struct {
	Reply string `json:"reply" validate:"required"`
}

func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	var req ReplyMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	admin := middleware.GetUser(r.Context())
	msg, err := h.messageService.Reply(r.Context(), id, admin.ID, req.Reply)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *MessageHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	msg, err := h.messageService.Archive(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	if err := h.messageService.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
