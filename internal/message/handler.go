package message

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/groupchat/pkg/request"
	"github.com/fkhayef/groupchat/pkg/response"
)

// Handler handles HTTP requests for message operations
type Handler struct {
	service *Service
}

// NewHandler creates a new message handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes adds the message endpoints to the /groups router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/{id}/message", h.Send)
	r.Get("/{id}/messages", h.List)
}

// Send handles POST /groups/{id}/message
// @Summary      Send a message
// @Description  Post a message to a group the user has joined
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        request body SendMessageRequest true "Message to send"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      403 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /groups/{id}/message [post]
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	groupID := request.PathID(r, "id")

	var req SendMessageRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	msg, err := h.service.Send(r.Context(), groupID, &req)
	if err != nil {
		response.Fail(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, msg.ToResponse())
}

// List handles GET /groups/{id}/messages
// @Summary      List group messages
// @Description  List every message of a group, oldest first
// @Tags         messages
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {array} GroupMessageResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /groups/{id}/messages [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	groupID := request.PathID(r, "id")

	messages, err := h.service.List(r.Context(), groupID)
	if err != nil {
		response.Fail(w, r, err)
		return
	}

	messageResponses := make([]*GroupMessageResponse, len(messages))
	for i, m := range messages {
		messageResponses[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, messageResponses)
}
