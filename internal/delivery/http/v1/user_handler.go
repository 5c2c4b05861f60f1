package v1

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/storage"
)

type UserHandler struct {
	profileUC      domain.ProfileUsecase
	jobUC          domain.JobUsecase
	applicationUC  domain.ApplicationUsecase
	notificationUC domain.NotificationUsecase
}

func NewUserHandler(
	protected *gin.RouterGroup,
	profileUC domain.ProfileUsecase,
	jobUC domain.JobUsecase,
	applicationUC domain.ApplicationUsecase,
	notificationUC domain.NotificationUsecase,
	store *storage.Local,
) {
	handler := &UserHandler{
		profileUC:      profileUC,
		jobUC:          jobUC,
		applicationUC:  applicationUC,
		notificationUC: notificationUC,
	}

	users := protected.Group("/users")
	{
		users.GET("/:id", handler.GetProfile)
		users.PUT("/:id", middleware.UploadStage(store, storage.ResumePolicy, storage.ProfilePicPolicy), handler.UpdateProfile)
		users.PUT("/:id/upload-resume", middleware.UploadStage(store, storage.ResumePolicy), handler.UploadResume)
		users.GET("/:id/saved-jobs", handler.SavedJobs)
		users.GET("/:id/applied-jobs", handler.AppliedJobs)
		users.GET("/:id/notifications", handler.Notifications)
	}

	protected.GET("/candidates/:candidateId", handler.CandidateSummary)
}

// GetProfile godoc
// @Summary      Full profile of the caller
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.profileUC.Get(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Update the caller's profile
// @Description  education, experience, certifications and languages are JSON encoded form
// @Description  fields. A present field replaces the stored rows, an absent one keeps them.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      int     true   "User ID"
// @Param        name         formData  string  true   "Name"
// @Param        email        formData  string  true   "Email"
// @Param        phone        formData  string  true   "Phone"
// @Param        location     formData  string  true   "Location"
// @Param        education    formData  string  false  "JSON array of {title, institution, year}"
// @Param        languages    formData  string  false  "JSON array of strings"
// @Param        resume       formData  file    false  "pdf, doc or docx"
// @Param        profile_pic  formData  file    false  "jpeg, png or gif"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Failure      415  {object}  response.Response
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	upd, err := profileUpdateFromForm(c)
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.profileUC.Update(c.Request.Context(), middleware.ActorFrom(c), id, upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}

func profileUpdateFromForm(c *gin.Context) (*domain.ProfileUpdate, error) {
	upd := &domain.ProfileUpdate{
		Name:             c.PostForm("name"),
		Email:            c.PostForm("email"),
		Phone:            c.PostForm("phone"),
		Location:         c.PostForm("location"),
		LinkedIn:         c.PostForm("linkedin"),
		GitHub:           c.PostForm("github"),
		Skills:           c.PostForm("skills"),
		Hobbies:          c.PostForm("hobbies"),
		Availability:     c.PostForm("availability"),
		PreferredJobType: c.PostForm("preferred_job_type"),
		Portfolio:        c.PostForm("portfolio"),
		Bio:              c.PostForm("bio"),
		ResumeLink:       middleware.UploadedPath(c, storage.ResumePolicy.Field),
		ProfilePic:       middleware.UploadedPath(c, storage.ProfilePicPolicy.Field),
	}

	var err error
	if upd.Education, err = credentialsField(c, "education"); err != nil {
		return nil, err
	}
	if upd.Experience, err = credentialsField(c, "experience"); err != nil {
		return nil, err
	}
	if upd.Certifications, err = credentialsField(c, "certifications"); err != nil {
		return nil, err
	}
	if raw, ok := c.GetPostForm("languages"); ok {
		langs, err := decodeLanguages(raw)
		if err != nil {
			return nil, err
		}
		upd.Languages = &langs
	}
	return upd, nil
}

// credentialsField returns nil when the field is absent and an empty slice
// when it is present but blank.
func credentialsField(c *gin.Context, field string) (*[]domain.Credential, error) {
	raw, ok := c.GetPostForm(field)
	if !ok {
		return nil, nil
	}
	list := []domain.Credential{}
	if strings.TrimSpace(raw) == "" {
		return &list, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, apperror.BadRequest(field + " must be a JSON array")
	}
	list = lo.Filter(list, func(cr domain.Credential, _ int) bool {
		return strings.TrimSpace(cr.Title) != "" || strings.TrimSpace(cr.Institution) != ""
	})
	return &list, nil
}

// decodeLanguages accepts a JSON array or a comma separated list.
func decodeLanguages(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	var langs []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &langs); err != nil {
			return nil, apperror.BadRequest("languages must be a JSON array")
		}
	} else {
		langs = strings.Split(raw, ",")
	}
	langs = lo.Map(langs, func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Uniq(lo.Compact(langs)), nil
}

// UploadResume godoc
// @Summary      Replace the caller's resume
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      int   true  "User ID"
// @Param        resume  formData  file  true  "pdf, doc or docx"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      413     {object}  response.Response
// @Failure      415     {object}  response.Response
// @Router       /users/{id}/upload-resume [put]
// @Security     BearerAuth
func (h *UserHandler) UploadResume(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.profileUC.UploadResume(c.Request.Context(), middleware.ActorFrom(c), id, middleware.UploadedPath(c, storage.ResumePolicy.Field))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume uploaded successfully", gin.H{"resume_link": user.ResumeLink, "user": user})
}

// SavedJobs godoc
// @Summary      Jobs saved by the caller
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      403  {object}  response.Response
// @Router       /users/{id}/saved-jobs [get]
// @Security     BearerAuth
func (h *UserHandler) SavedJobs(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.jobUC.SavedJobs(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved jobs retrieved", jobs)
}

// AppliedJobs godoc
// @Summary      Jobs the caller applied to
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=[]domain.AppliedJob}
// @Failure      403  {object}  response.Response
// @Router       /users/{id}/applied-jobs [get]
// @Security     BearerAuth
func (h *UserHandler) AppliedJobs(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.applicationUC.AppliedJobs(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applied jobs retrieved", jobs)
}

// Notifications godoc
// @Summary      Notifications of the caller
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=[]domain.Notification}
// @Failure      403  {object}  response.Response
// @Router       /users/{id}/notifications [get]
// @Security     BearerAuth
func (h *UserHandler) Notifications(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	list, err := h.notificationUC.List(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notifications retrieved", list)
}

// CandidateSummary godoc
// @Summary      Candidate contact card
// @Tags         users
// @Produce      json
// @Param        candidateId  path      int  true  "Candidate ID"
// @Success      200          {object}  response.Response{data=domain.CandidateSummary}
// @Failure      404          {object}  response.Response
// @Router       /candidates/{candidateId} [get]
// @Security     BearerAuth
func (h *UserHandler) CandidateSummary(c *gin.Context) {
	id, err := pathID(c, "candidateId")
	if err != nil {
		c.Error(err)
		return
	}

	summary, err := h.profileUC.CandidateSummary(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved", summary)
}
