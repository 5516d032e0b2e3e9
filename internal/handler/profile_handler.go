package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"profilesvc/internal/dto"
	"profilesvc/internal/service"
	"profilesvc/internal/validation"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	svc service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(svc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// CreateProfile godoc
// @Summary Create a profile for a user
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body dto.ProfileCreateRequest true "Profile data"
// @Success 200 {object} dto.ProfileCreateResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} validation.Response
// @Failure 500 {object} errors.ErrorResponse
// @Router /create-profile/ [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req dto.ProfileCreateRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}

	profile, err := h.svc.CreateProfile(c.Request().Context(), req.ToProfile())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.NewProfileCreateResponse(profile))
}
