package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/dtos"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/middleware"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/services"
)

type AuthHandler struct {
	UserService *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{UserService: users}
}

func (h *AuthHandler) RegisterForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, "register.html", nil)
}

// Register creates the account and sends the user to the login page. All
// business rejections re-render the form with an inline error, never a 5xx.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var form dtos.RegisterForm
	if err := ctx.ShouldBind(&form); err != nil {
		render(ctx, http.StatusBadRequest, "register.html", gin.H{
			"Error": "All fields are required.",
		})
		return
	}

	_, err := h.UserService.Register(&form)
	switch {
	case err == nil:
		ctx.Redirect(http.StatusFound, "/login")
	case errors.Is(err, services.ErrEmailTaken):
		render(ctx, http.StatusOK, "register.html", gin.H{
			"Error": "Email already registered.",
		})
	case errors.Is(err, services.ErrCredentialTaken):
		// Two registrations raced past the pre-check; the insert was rolled
		// back on the unique index.
		render(ctx, http.StatusOK, "register.html", gin.H{
			"Error": "Username or email already exists.",
		})
	case errors.Is(err, services.ErrInvalidRole):
		render(ctx, http.StatusBadRequest, "register.html", gin.H{
			"Error": "Unknown role.",
		})
	default:
		log.Printf("register: %v", err)
		ctx.String(http.StatusInternalServerError, "something went wrong")
	}
}

func (h *AuthHandler) LoginForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, "login.html", nil)
}

// Login verifies credentials and attaches id and role to the session. The
// failure message never says whether the username or the password was wrong.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var form dtos.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		render(ctx, http.StatusBadRequest, "login.html", gin.H{
			"Error": "Invalid username or password.",
		})
		return
	}

	user, err := h.UserService.Authenticate(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			render(ctx, http.StatusOK, "login.html", gin.H{
				"Error": "Invalid username or password.",
			})
			return
		}
		log.Printf("login: %v", err)
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	if err := middleware.SignIn(ctx, user); err != nil {
		log.Printf("login: session save: %v", err)
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	ctx.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	if err := middleware.SignOut(ctx); err != nil {
		log.Printf("logout: session save: %v", err)
	}
	ctx.Redirect(http.StatusFound, "/")
}
