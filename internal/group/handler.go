package group

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/groupchat/pkg/request"
	"github.com/fkhayef/groupchat/pkg/response"
)

// Handler handles HTTP requests for group operations
type Handler struct {
	service *Service
}

// NewHandler creates a new group handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for group endpoints. Each extra function may
// register further routes under the same /groups prefix.
func (h *Handler) Routes(extra ...func(chi.Router)) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Post("/{id}/join", h.Join)

	for _, register := range extra {
		register(r)
	}

	return r
}

// Create handles POST /groups
// @Summary      Create a new group
// @Description  Create a group with a unique name
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        request body CreateGroupRequest true "Group creation request"
// @Success      201 {object} GroupResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      409 {object} response.ErrorBody
// @Router       /groups [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	group, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.Fail(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, group.ToResponse())
}

// Join handles POST /groups/{id}/join
// @Summary      Join a group
// @Description  Add a user to a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        request body JoinGroupRequest true "User joining the group"
// @Success      201 {object} JoinResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Failure      409 {object} response.ErrorBody
// @Router       /groups/{id}/join [post]
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	groupID := request.PathID(r, "id")

	var req JoinGroupRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	membership, err := h.service.Join(r.Context(), groupID, &req)
	if err != nil {
		response.Fail(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, membership.ToResponse())
}
