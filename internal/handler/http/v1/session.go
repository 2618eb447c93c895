package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/barangay_portal/internal/apiclient"
	"github.com/shenikar/barangay_portal/internal/forms"
)

// @Summary Log in
// @Description Log in to the portal API with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body forms.LoginForm true "Login credentials"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ValidationErrorResponse "Validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 502 {object} map[string]string "Portal API is unavailable"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input forms.LoginForm
	log := h.log("login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Forms.Check(&input); err != nil {
		h.respondError(c, log, err)
		return
	}

	user, err := h.Session.Login(c.Request.Context(), input.Input())
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			log.WithError(err).Warn("Login rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Register a resident account
// @Description Create a new account. The user is not logged in afterwards.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body forms.RegisterForm true "Registration form"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ValidationErrorResponse "Validation error"
// @Failure 502 {object} map[string]string "Portal API is unavailable"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input forms.RegisterForm
	log := h.log("register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Forms.Check(&input); err != nil {
		h.respondError(c, log, err)
		return
	}

	user, err := h.Session.Register(c.Request.Context(), input.Input())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Log out
// @Description Log out and clear the local session. Local state is cleared even if the portal API call fails.
// @Tags Auth
// @Produce json
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	if err := h.Session.Logout(c.Request.Context()); err != nil {
		h.log("logout").WithError(err).Warn("Server logout failed, local session cleared anyway")
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Get the currently authenticated user
// @Tags Auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Not authenticated"
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	user := h.Session.User()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}
