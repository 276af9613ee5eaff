package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/api/middleware"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/application"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/user"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

var authFieldLabels = map[string]string{
	"Email":         "email",
	"Password":      "password",
	"Name":          "name",
	"Phone":         "phone",
	"Role":          "role",
	"LicenseNumber": "license number",
	"Brokerage":     "brokerage",
}

// bindErrorMessage turns binding failures into frontend-friendly text.
func bindErrorMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input"
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		lbl, ok := authFieldLabels[fe.StructField()]
		if !ok {
			lbl = strings.ToLower(fe.StructField())
		}

		var msg string
		switch fe.Tag() {
		case "required", "required_if":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		case "excluded_unless":
			msg = fmt.Sprintf("%s is only allowed for agents", lbl)
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

// Register godoc
// @Summary Register an agent or client account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "Registration info"
// @Success 201 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Failure 500 {object} response.ErrorResponse "Failed to create user"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	usr, token, err := h.svc.Register(input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, response.TokenResponse{
		Message: "Registration successful",
		Token:   token,
		User:    usr.View(),
	})
}

// Login godoc
// @Summary Log in with email, password and role
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Login credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Failure 403 {object} response.ErrorResponse "Account is deactivated"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	usr, token, err := h.svc.Login(input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		case errors.Is(err, application.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Account is deactivated"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Message: "Login successful",
		Token:   token,
		User:    usr.View(),
	})
}

// Profile godoc
// @Summary Current account profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ProfileResponse
// @Failure 401 {object} response.ErrorResponse "Authorization required"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required"})
		return
	}

	usr, err := h.svc.Profile(claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, response.ProfileResponse{User: usr.View()})
}
