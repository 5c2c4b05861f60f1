package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler mounts signup and login for both roles. limit guards every
// public credential route.
func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, limit gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/signup", limit, handler.Signup)
	public.POST("/login", limit, handler.Login)

	employer := public.Group("/employer")
	{
		employer.POST("/signup", limit, handler.EmployerSignup)
		employer.POST("/login", limit, handler.EmployerLogin)
	}

	protected.GET("/me", handler.Me)
}

// Signup godoc
// @Summary      Candidate registration
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      domain.CandidateSignup  true  "Candidate details"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req domain.CandidateSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	user, err := h.authUC.RegisterCandidate(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", gin.H{"userId": user.ID})
}

// EmployerSignup godoc
// @Summary      Employer registration
// @Description  Creates the employer account and its company profile in one step.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      domain.EmployerSignup  true  "Employer details"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /employer/signup [post]
func (h *AuthHandler) EmployerSignup(c *gin.Context) {
	var req domain.EmployerSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	user, err := h.authUC.RegisterEmployer(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Employer registered successfully", gin.H{"userId": user.ID})
}

// Login godoc
// @Summary      Candidate login
// @Description  Identifier is an email or a 10 digit phone number.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      domain.LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, domain.RoleCandidate)
}

// EmployerLogin godoc
// @Summary      Employer login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      domain.LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /employer/login [post]
func (h *AuthHandler) EmployerLogin(c *gin.Context) {
	h.login(c, domain.RoleEmployer)
}

func (h *AuthHandler) login(c *gin.Context, role string) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), &req, role)
	if err != nil {
		c.Error(err)
		return
	}

	if role == domain.RoleEmployer {
		u := result.User
		response.Success(c, http.StatusOK, "Login successful", gin.H{
			"token":      result.Token,
			"expires_at": result.ExpiresAt,
			"employer": gin.H{
				"id":           u.ID,
				"name":         u.Name,
				"email":        u.Email,
				"phone":        u.Phone,
				"company_name": u.CompanyName,
				"industry":     u.Industry,
				"company_size": u.CompanySize,
			},
		})
		return
	}
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me godoc
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.Me(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}
