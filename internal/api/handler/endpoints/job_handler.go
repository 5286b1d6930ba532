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

type jobHandler struct {
	jobService *service.JobService
	logger     zerolog.Logger
	config     joblink.AppConfig
}

func JobHandler(router *graceful.Graceful, jobService *service.JobService) {
	h := &jobHandler{
		jobService: jobService,
		logger:     joblink.Logger,
		config:     joblink.GetConfig(),
	}

	public := router.Group("/api/v1")
	{
		public.GET("/jobs", h.list)
		public.GET("/jobs/:jobId", h.get)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(h.config))
	{
		protected.POST("/jobs", h.create)
		protected.PUT("/jobs/:jobId", h.update)
		protected.GET("/employer/jobs", h.listMine)
		if h.config.Features.JobClose {
			protected.PUT("/jobs/:jobId/status", h.close)
		}
	}
}

func (slf *jobHandler) create(c *gin.Context) {
	var createDTO request.CreateJobDTO
	if err := pkg.ParseAndValidate(c, &createDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating create job DTO")
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	job, err := slf.jobService.Create(c.Request.Context(), c.GetString("userID"), createDTO)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.JobResponse{Success: true, Job: job})
}

func (slf *jobHandler) list(c *gin.Context) {
	jobs, err := slf.jobService.List(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.JobListResponse{Success: true, Jobs: jobs})
}

func (slf *jobHandler) get(c *gin.Context) {
	job, err := slf.jobService.Get(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.JobResponse{Success: true, Job: job})
}

func (slf *jobHandler) update(c *gin.Context) {
	var updateDTO request.UpdateJobDTO
	if err := pkg.ParseAndValidate(c, &updateDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating update job DTO")
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	job, err := slf.jobService.Update(c.Request.Context(), c.Param("jobId"), c.GetString("userID"), updateDTO)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.JobResponse{Success: true, Job: job})
}

func (slf *jobHandler) close(c *gin.Context) {
	var statusDTO request.UpdateJobStatusDTO
	if err := pkg.ParseAndValidate(c, &statusDTO); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating job status DTO")
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}
	if statusDTO.Status != "closed" {
		apperrors.Respond(c, apperrors.Validation("jobs can only be moved to closed"))
		return
	}

	job, err := slf.jobService.Close(c.Request.Context(), c.Param("jobId"), c.GetString("userID"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.JobResponse{Success: true, Job: job})
}

func (slf *jobHandler) listMine(c *gin.Context) {
	jobs, err := slf.jobService.ListByEmployer(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response.JobListResponse{Success: true, Jobs: jobs})
}
