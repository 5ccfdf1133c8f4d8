package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hirewire/portal/internal/api/metrics"
	"github.com/hirewire/portal/internal/core/domain"
	"github.com/hirewire/portal/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type UserHandler struct {
	users    ports.UserService
	identity ports.IdentityProvider
}

func NewUserHandler(users ports.UserService, identity ports.IdentityProvider) *UserHandler {
	return &UserHandler{users: users, identity: identity}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=job_seeker employer"`
}

// UpdateRole completes role selection for the signed-in caller. The write
// is scoped to the caller's own identity; the user document is updated
// first and the provider-held claim set rewritten after, so the next
// request already routes by the new role.
//
// @Summary      Select or change the caller's role
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      updateRoleRequest  true  "Role selection"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/user/update-role [post]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := domain.Role(req.Role)
	user, err := h.users.UpdateRole(c.Request().Context(), id, role)
	if err != nil {
		return err
	}

	if err := h.identity.SetRole(c.Response(), c.Request(), role); err != nil {
		return err
	}

	metrics.RoleUpdatesTotal.WithLabelValues(string(role)).Inc()
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Me returns the sanitized record of the signed-in caller.
//
// @Summary      Current user
// @Tags         user
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/user/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}
