package endpoints

import (
	"net/http"

	"joblink"
	"joblink/internal/api/handler/middleware"
	"joblink/internal/api/handler/request"
	"joblink/internal/api/handler/response"
	"joblink/internal/api/service"
	"joblink/internal/apperrors"
	"joblink/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type authHandler struct {
	authService *service.AuthService
	logger      zerolog.Logger
	config      joblink.AppConfig
}

func AuthHandler(router *graceful.Graceful, authService *service.AuthService) {
	h := &authHandler{
		authService: authService,
		logger:      joblink.Logger,
		config:      joblink.GetConfig(),
	}

	auth := router.Group("/api/v1")
	{
		auth.POST("/signup", h.signup)
		auth.POST("/signin", h.signin)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(h.config))
	{
		protected.GET("/session", h.session)
	}
}

func (slf *authHandler) signup(c *gin.Context) {
	var signupDTO request.SignupDTO
	if err := pkg.ParseAndValidate(c, &signupDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating signup DTO")
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	user, token, err := slf.authService.Signup(c.Request.Context(), signupDTO)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.AuthResponse{
		Success:     true,
		User:        user,
		UserID:      user.ID,
		AccessToken: token,
	})
}

func (slf *authHandler) signin(c *gin.Context) {
	var signinDTO request.SigninDTO
	if err := pkg.ParseAndValidate(c, &signinDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating signin DTO")
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	user, token, err := slf.authService.Signin(c.Request.Context(), signinDTO)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.AuthResponse{
		Success:     true,
		User:        user,
		AccessToken: token,
	})
}

func (slf *authHandler) session(c *gin.Context) {
	user, err := slf.authService.Session(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SessionResponse{Success: true, User: user})
}
