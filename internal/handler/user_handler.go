package handler

import (
	"github.com/gin-gonic/gin"

	"voterkyc/internal/domain"
	"voterkyc/internal/service"
)

// UserHandler handles user profile and lookup endpoints.
type UserHandler struct {
	userService service.UserService
	voteService service.VoteService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, voteService service.VoteService) *UserHandler {
	return &UserHandler{userService: userService, voteService: voteService}
}

// MeResponse is the caller's profile with ballot status.
type MeResponse struct {
	User     *domain.User `json:"user"`
	HasVoted bool         `json:"has_voted"`
}

// Me handles GET /api/v1/me
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200 {object} APIResponse{data=MeResponse}
// @Failure      401 {object} APIResponse
// @Security     BearerAuth
// @Router       /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	voted, err := h.voteService.HasVoted(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MeResponse{User: user, HasVoted: voted})
}

// GetByUsername handles GET /api/v1/admin/users/:username
// @Summary      Look up a user by username
// @Tags         admin
// @Produce      json
// @Param        username path string true "Username"
// @Success      200 {object} APIResponse{data=domain.User}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /admin/users/{username} [get]
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.userService.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, user)
}

// List handles GET /api/v1/admin/users
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.User,meta=PagMeta}
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	users, total, err := h.userService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, users, PagMeta{Total: total, Offset: offset, Limit: limit})
}
