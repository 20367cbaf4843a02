package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/services"
)

const (
	// Session keys. The cookie carries only the user id and role; the full
	// record is re-read per request so a deleted user cannot keep a session.
	SessionUserID = "user_id"
	SessionRole   = "role"

	ctxUserKey = "currentUser"
)

// Identify resolves the session cookie into a *models.User on the gin
// context. It never rejects a request: routes that need a login stack
// RequireLogin on top.
func Identify(users *services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := sessions.Default(ctx)
		raw := session.Get(SessionUserID)
		if raw == nil {
			ctx.Next()
			return
		}
		userID, ok := raw.(uint)
		if !ok {
			session.Clear()
			_ = session.Save()
			ctx.Next()
			return
		}

		user, err := users.GetByID(userID)
		if err != nil {
			// Stale cookie for a user that no longer exists.
			session.Clear()
			_ = session.Save()
			ctx.Next()
			return
		}

		ctx.Set(ctxUserKey, user)
		ctx.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if CurrentUser(ctx) == nil {
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user set by Identify, or nil.
func CurrentUser(ctx *gin.Context) *models.User {
	v, ok := ctx.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// SignIn writes the user's identity into the session.
func SignIn(ctx *gin.Context, user *models.User) error {
	session := sessions.Default(ctx)
	session.Set(SessionUserID, user.ID)
	session.Set(SessionRole, string(user.Role))
	return session.Save()
}

// SignOut clears all session state.
func SignOut(ctx *gin.Context) error {
	session := sessions.Default(ctx)
	session.Clear()
	return session.Save()
}
