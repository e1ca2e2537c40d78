// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"surveyor/internal/delivery/api/response"
	deliverycontext "surveyor/internal/delivery/context"
	"surveyor/internal/domain/entity"
	"surveyor/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the authentication endpoints of one principal variant.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler. Fx builds one per variant.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger.With(slog.String("variant", uc.Variant().String())),
	}
}

// Register handles register-admin / register-company.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Profile: entity.Profile{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			CompanyName: req.CompanyName,
			Phone:       req.Phone,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSessionResponse(output))
}

// Login handles login-admin / login-company.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(output))
}

// Verify handles verify-admin / verify-company. Requires the session middleware.
func (h *AuthHandler) Verify(c echo.Context) error {
	output, err := h.uc.Verify(c.Request().Context(), deliverycontext.GetSessionToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := &VerifyResponse{Principal: toPrincipalResponse(output.Principal)}
	if output.Claims.IssuedAt != nil {
		resp.IssuedAt = output.Claims.IssuedAt.Time
	}
	if output.Claims.ExpiresAt != nil {
		resp.ExpiresAt = output.Claims.ExpiresAt.Time
	}

	return response.Success(c, http.StatusOK, resp)
}

// VerifyBoolean handles verify-admin-bool / verify-company-bool. It always answers 200.
func (h *AuthHandler) VerifyBoolean(c echo.Context) error {
	token := deliverycontext.ExtractSessionToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		return response.Success(c, http.StatusOK, false)
	}

	return response.Success(c, http.StatusOK, h.uc.VerifyBoolean(c.Request().Context(), token))
}

// VerifyPasswordUpdated reports whether the principal has changed the initial password.
func (h *AuthHandler) VerifyPasswordUpdated(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid email input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	updated, err := h.uc.WasPasswordUpdated(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// UpdatePassword changes the password of the token's bearer. Requires the session middleware.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), deliverycontext.GetSessionToken(c), req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Debug("Password changed through API", slog.String("request_id", deliverycontext.GetRequestID(c)))

	return response.Success(c, http.StatusOK, MessageResponse{Success: true, Message: "Password updated successfully"})
}
