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

type applicationHandler struct {
	applicationService *service.ApplicationService
	logger             zerolog.Logger
	config             joblink.AppConfig
}

func ApplicationHandler(router *graceful.Graceful, applicationService *service.ApplicationService) {
	h := &applicationHandler{
		applicationService: applicationService,
		logger:             joblink.Logger,
		config:             joblink.GetConfig(),
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(h.config))
	{
		protected.POST("/applications", h.submit)
		protected.GET("/applications", h.listMine)
		protected.PUT("/applications/:applicationId", h.update)
		protected.PUT("/applications/:applicationId/status", h.updateStatus)
		protected.GET("/jobs/:jobId/applicants", h.listApplicants)
	}
}

func (slf *applicationHandler) submit(c *gin.Context) {
	var submitDTO request.SubmitApplicationDTO
	if err := pkg.ParseAndValidate(c, &submitDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating submit application DTO")
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	app, err := slf.applicationService.Submit(c.Request.Context(), c.GetString("userID"), submitDTO)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ApplicationResponse{Success: true, Application: app})
}

func (slf *applicationHandler) listMine(c *gin.Context) {
	apps, err := slf.applicationService.ListMine(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ApplicationListResponse{Success: true, Applications: apps})
}

func (slf *applicationHandler) listApplicants(c *gin.Context) {
	apps, err := slf.applicationService.ListApplicants(c.Request.Context(), c.Param("jobId"), c.GetString("userID"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ApplicantListResponse{Success: true, Applicants: apps})
}

func (slf *applicationHandler) update(c *gin.Context) {
	var updateDTO request.UpdateApplicationDTO
	if err := pkg.ParseAndValidate(c, &updateDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating update application DTO")
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	app, err := slf.applicationService.Update(c.Request.Context(), c.Param("applicationId"), c.GetString("userID"), updateDTO)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ApplicationResponse{Success: true, Application: app})
}

func (slf *applicationHandler) updateStatus(c *gin.Context) {
	var statusDTO request.UpdateApplicationStatusDTO
	if err := pkg.ParseAndValidate(c, &statusDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating application status DTO")
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	app, err := slf.applicationService.UpdateStatus(c.Request.Context(), c.Param("applicationId"), c.GetString("userID"), statusDTO.Status)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ApplicationResponse{Success: true, Application: app})
}
