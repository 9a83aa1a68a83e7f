package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ferreo/internal/core/apperror"
	appctx "ferreo/internal/core/context"
	"ferreo/internal/core/id"
	"ferreo/internal/domain/auth"
	"ferreo/internal/infrastructure/http/v1/dto"
)

// AuthHandler serves login and user management endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
	users   auth.UserRepository
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service, users auth.UserRepository) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service, users: users}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.service.Login(c.Request.Context(), auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSession(session))
}

// PortalLogin handles POST /portal/login.
func (h *AuthHandler) PortalLogin(c *gin.Context) {
	var req dto.PortalLoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.service.PortalLogin(c.Request.Context(), auth.PortalCredentials{
		TaxID:      req.TaxID,
		AccessCode: req.AccessCode,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSession(session))
}

// Me handles GET /auth/me. Supplier sessions have no user record, so
// they get the session claims back instead.
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	uc := appctx.GetUser(ctx)
	if uc == nil {
		h.Error(c, apperror.NewUnauthorized("sesión no válida"))
		return
	}

	if uc.Role == appctx.RoleSupplier {
		h.OK(c, gin.H{"role": uc.Role, "supplierId": uc.SupplierID})
		return
	}

	userID, err := id.Parse(uc.UserID)
	if err != nil {
		h.Error(c, apperror.NewUnauthorized("sesión no válida"))
		return
	}

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(user))
}

// CreateUser handles POST /auth/users (admin only).
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// ListUsers handles GET /auth/users (admin only).
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(users))
	for i := range users {
		items[i] = dto.FromUser(&users[i])
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(users)),
		Limit:      len(users),
	})
}

// ChangePassword handles POST /auth/change-password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChangePasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	userID, err := id.Parse(appctx.GetUserID(ctx))
	if err != nil {
		h.Error(c, apperror.NewUnauthorized("sesión no válida"))
		return
	}

	if err := h.service.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "contraseña actualizada")
}
