// Package handlers wires HTTP requests to the service layer and renders the
// HTML views. Business rules live in internal/services; handlers only bind
// input, check the caller's role, and pick a response.
package handlers

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/middleware"
)

// Flash is a one-shot notice carried in the session across a redirect.
// Level is "success" or "warning".
type Flash struct {
	Level   string
	Message string
}

func init() {
	// Flashes ride the gorilla session cookie, which is gob-encoded.
	gob.Register(Flash{})
}

func addFlash(ctx *gin.Context, level, message string) {
	session := sessions.Default(ctx)
	session.AddFlash(Flash{Level: level, Message: message})
	_ = session.Save()
}

func takeFlashes(ctx *gin.Context) []Flash {
	session := sessions.Default(ctx)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Reading flashes mutates the session; persist the removal.
	_ = session.Save()

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

// render draws an HTML view with the ambient data every template expects.
func render(ctx *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CurrentUser"] = middleware.CurrentUser(ctx)
	data["Flashes"] = takeFlashes(ctx)
	ctx.HTML(status, name, data)
}

// HealthCheck is a liveness probe.
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
