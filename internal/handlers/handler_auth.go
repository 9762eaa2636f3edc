package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
	"github.com/veckotid/time_tracking_app/internal/middleware"
	"github.com/veckotid/time_tracking_app/internal/utils"
	"github.com/veckotid/time_tracking_app/pkg/config"
)

// authHandler handles login, registration and account self-service.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

func newAuthHandler(authService portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{authService: authService, cfg: cfg}
}

// registerAuthRoutes registers the public authentication routes. Login is
// rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, cfg)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(newLoginLimiter()), h.login)
		auth.POST("/register", h.register)
	}
}

// registerAuthProtectedRoutes registers the auth routes that require a token.
func registerAuthProtectedRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, cfg *config.Config) {
	h := newAuthHandler(services.Auth, cfg)
	auth := rg.Group("/auth")
	{
		auth.GET("/me", h.me)
		auth.POST("/change-password", h.changePassword)
	}
}

// newLoginLimiter allows a small burst of login attempts per IP per minute.
func newLoginLimiter() *limiter.Limiter {
	rate, _ := limiter.NewRateFromFormatted("5-M")
	return limiter.New(memory.NewStore(), rate)
}

// login godoc
// @Summary Log in
// @Description Verifies credentials and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign token",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// register godoc
// @Summary Register a company
// @Description Creates a new company together with its first admin user.
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequest true "Company and admin details"
// @Success 201 {object} dto.LoginResponse
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign token",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// me godoc
// @Summary Current user
// @Description Returns the authenticated user and their company.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	user, company, err := h.authService.Me(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MeResponse{User: dto.ToUserResponse(user), Company: company})
}

// changePassword godoc
// @Summary Change password
// @Tags auth
// @Accept json
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), caller, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
