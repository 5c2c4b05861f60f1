package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/storage"
)

type JobHandler struct {
	jobUC domain.JobUsecase
	appUC domain.ApplicationUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, appUC domain.ApplicationUsecase, store *storage.Local) {
	handler := &JobHandler{jobUC: jobUC, appUC: appUC}

	// Only active jobs are ever listed publicly.
	public.GET("/jobs", handler.List)

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.GET("/:id", handler.GetDetails)
		protectedJobs.GET("/:id/status", handler.Status)
		protectedJobs.GET("/user/:userId", handler.ListByOwner)
		protectedJobs.POST("", middleware.UploadStage(store, storage.LogoPolicy), handler.Create)
		protectedJobs.DELETE("/:id", handler.Delete)
		protectedJobs.POST("/:id/save", handler.ToggleSave)
		protectedJobs.DELETE("/:id/save", handler.Unsave)
		protectedJobs.POST("/:id/apply", handler.Apply)
		protectedJobs.POST("/:id/report", handler.Report)
	}
}

// ListJobs godoc
// @Summary      List active jobs
// @Tags         jobs
// @Produce      json
// @Param        q          query     string  false  "Search in title, company and description"
// @Param        location   query     string  false  "Location contains"
// @Param        job_type   query     string  false  "Exact job type"
// @Param        category   query     string  false  "Exact category"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Query:    strings.TrimSpace(c.Query("q")),
		Location: strings.TrimSpace(c.Query("location")),
		JobType:  strings.TrimSpace(c.Query("job_type")),
		Category: strings.TrimSpace(c.Query("category")),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}

	jobs, err := h.jobUC.ListActive(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetJob godoc
// @Summary      Job details
// @Description  Returns an active job and counts the view.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// CreateJob godoc
// @Summary      Post a job
// @Description  Multipart form; an optional logo image is stored under /uploads/logos.
// @Tags         jobs
// @Accept       multipart/form-data
// @Produce      json
// @Param        title                 formData  string  true   "Title"
// @Param        job_type              formData  string  true   "Job type"
// @Param        description           formData  string  true   "Description"
// @Param        company               formData  string  true   "Company"
// @Param        skills                formData  string  false  "Comma separated skills"
// @Param        application_deadline  formData  string  false  "YYYY-MM-DD or RFC3339"
// @Param        logo                  formData  file    false  "Company logo"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Failure      415  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var input domain.JobInput
	if err := c.ShouldBind(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid job form"))
		return
	}

	job, err := h.jobUC.Create(c.Request.Context(), middleware.ActorFrom(c), &input, middleware.UploadedPath(c, storage.LogoPolicy.Field))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job posted successfully", gin.H{"jobId": job.ID, "job": job})
}

// DeleteJob godoc
// @Summary      Delete an own job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobUC.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

// ToggleSave godoc
// @Summary      Save or unsave a job
// @Description  Unsaves when already saved, saves otherwise.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id}/save [post]
// @Security     BearerAuth
func (h *JobHandler) ToggleSave(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	saved, err := h.jobUC.ToggleSave(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	msg := "Job unsaved successfully"
	if saved {
		msg = "Job saved successfully"
	}
	response.Success(c, http.StatusOK, msg, gin.H{"saved": saved})
}

// UnsaveJob godoc
// @Summary      Remove a saved job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id}/save [delete]
// @Security     BearerAuth
func (h *JobHandler) Unsave(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobUC.Unsave(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job removed from saved jobs", nil)
}

// ApplyJob godoc
// @Summary      Apply to a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *JobHandler) Apply(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.appUC.Apply(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ReportJob godoc
// @Summary      Report a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id      path      int                 true  "Job ID"
// @Param        report  body      domain.ReportInput  true  "Reason"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{id}/report [post]
// @Security     BearerAuth
func (h *JobHandler) Report(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var input domain.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Reason is required"))
		return
	}

	if err := h.jobUC.Report(c.Request.Context(), middleware.ActorFrom(c), id, &input); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job reported successfully", nil)
}

// JobStatus godoc
// @Summary      Saved, applied and reported flags for the caller
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Router       /jobs/{id}/status [get]
// @Security     BearerAuth
func (h *JobHandler) Status(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	status, err := h.jobUC.Status(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job status retrieved", status)
}

// ListJobsByOwner godoc
// @Summary      Jobs posted by a user
// @Tags         jobs
// @Produce      json
// @Param        userId  path      int  true  "Employer ID"
// @Success      200     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/user/{userId} [get]
// @Security     BearerAuth
func (h *JobHandler) ListByOwner(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.jobUC.ListByOwner(c.Request.Context(), middleware.ActorFrom(c), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}
