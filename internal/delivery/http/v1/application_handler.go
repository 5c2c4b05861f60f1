package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	r.POST("/apply", handler.ApplyDetailed)

	applications := r.Group("/applications")
	{
		applications.DELETE("/:jobId", handler.Withdraw)
		applications.GET("/job/:job_id", handler.ListJobApplications)
		applications.PUT("/status/:id", handler.UpdateStatus)
	}
}

// ApplyDetailed godoc
// @Summary      Apply with contact details
// @Description  user_id must match the authenticated candidate.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ApplyRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.JobApplication}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyDetailed(c *gin.Context) {
	var req domain.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	app, err := h.applicationUC.ApplyDetailed(c.Request.Context(), middleware.ActorFrom(c), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /applications/{jobId} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	jobID, err := pathID(c, "jobId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.applicationUC.Withdraw(c.Request.Context(), middleware.ActorFrom(c), jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application withdrawn successfully", nil)
}

// ListJobApplications godoc
// @Summary      Applications to an own job
// @Tags         applications
// @Produce      json
// @Param        job_id  path      int  true  "Job ID"
// @Success      200     {object}  response.Response{data=[]domain.JobApplication}
// @Failure      404     {object}  response.Response
// @Router       /applications/job/{job_id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	jobID, err := pathID(c, "job_id")
	if err != nil {
		c.Error(err)
		return
	}

	apps, err := h.applicationUC.ListForJob(c.Request.Context(), middleware.ActorFrom(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// UpdateStatus godoc
// @Summary      Change an application's status
// @Description  One of Pending, Applied, Shortlisted, Rejected, Hired, Reviewed.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      domain.StatusUpdate  true  "New status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/status/{id} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.applicationUC.SetStatus(c.Request.Context(), middleware.ActorFrom(c), id, req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", gin.H{"id": id, "status": req.Status})
}
