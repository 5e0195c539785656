package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

// UserHandler exposes the restricted user listing for the assignee picker.
type UserHandler struct {
	identity ports.IdentityService
}

func NewUserHandler(identity ports.IdentityService) *UserHandler {
	return &UserHandler{identity: identity}
}

type assignableUserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type listUsersResponse struct {
	Users []assignableUserResponse `json:"users"`
}

// List handles GET /users. Any authenticated caller sees the same
// restricted view: translators and editors only.
//
// @Summary      List assignable users (translators and editors)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	if _, err := ctxProfile(c); err != nil {
		return err
	}

	users, err := h.identity.ListAssignable(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]assignableUserResponse, len(users))
	for i, u := range users {
		out[i] = assignableUserResponse{ID: u.ID, FullName: u.FullName, Role: u.Role}
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: out})
}
