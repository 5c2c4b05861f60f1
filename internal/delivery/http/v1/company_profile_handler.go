package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/storage"
)

type CompanyProfileHandler struct {
	profileUC domain.CompanyProfileUsecase
}

// NewCompanyProfileHandler registers company profile routes
func NewCompanyProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.CompanyProfileUsecase, store *storage.Local) {
	handler := &CompanyProfileHandler{profileUC: profileUC}

	public.GET("/companies", handler.List)
	public.GET("/employers", handler.ListEmployers)

	protected.GET("/companyprofile/:id", handler.Get)
	protected.PUT("/companyprofile/:id", middleware.UploadStage(store, storage.LogoPolicy), handler.Update)
}

// ListCompanies godoc
// @Summary      List company profiles
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CompanyProfile}
// @Router       /companies [get]
func (h *CompanyProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies retrieved", profiles)
}

// ListEmployers godoc
// @Summary      Employer directory
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.EmployerSummary}
// @Router       /employers [get]
func (h *CompanyProfileHandler) ListEmployers(c *gin.Context) {
	employers, err := h.profileUC.ListEmployers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employers retrieved", employers)
}

// GetCompanyProfile godoc
// @Summary      Company profile
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Employer ID"
// @Success      200  {object}  response.Response{data=domain.CompanyProfile}
// @Failure      404  {object}  response.Response
// @Router       /companyprofile/{id} [get]
// @Security     BearerAuth
func (h *CompanyProfileHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.profileUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile retrieved", profile)
}

// UpdateCompanyProfile godoc
// @Summary      Update the caller's company profile
// @Description  JSON or multipart; a multipart logo file replaces the logo URL.
// @Tags         companies
// @Accept       json,multipart/form-data
// @Produce      json
// @Param        id       path      int                          true  "Employer ID"
// @Param        profile  body      domain.CompanyProfileUpdate  true  "Profile fields"
// @Success      200      {object}  response.Response{data=domain.CompanyProfile}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /companyprofile/{id} [put]
// @Security     BearerAuth
func (h *CompanyProfileHandler) Update(c *gin.Context) {
	userID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.CompanyProfileUpdate
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	if logo := middleware.UploadedPath(c, storage.LogoPolicy.Field); logo != "" {
		req.Logo = logo
	}

	profile, err := h.profileUC.Update(c.Request.Context(), middleware.ActorFrom(c), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile updated", profile)
}
