package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"profilesvc/internal/dto"
	"profilesvc/internal/service"
	"profilesvc/internal/validation"
)

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} validation.Response
// @Failure 500 {object} errors.ErrorResponse
// @Router /register/ [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}

	user, err := h.svc.Register(c.Request().Context(), req.ToUser())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.NewRegisterResponse(user))
}

// GetUser godoc
// @Summary Get user with profile by id
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.UserView
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} validation.Response
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/{user_id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return validation.InvalidPathParam("user_id", "integer")
	}

	user, profile, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.NewUserView(user, profile))
}
