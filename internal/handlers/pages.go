package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/hotjobs"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/services"
)

type PageHandler struct {
	JobService *services.JobService
}

func NewPageHandler(jobs *services.JobService) *PageHandler {
	return &PageHandler{JobService: jobs}
}

// Home lists all jobs newest-first, filtered by the optional ?q= substring
// over title, company, and location. The hot-jobs catalog is shown alongside.
func (h *PageHandler) Home(ctx *gin.Context) {
	query := ctx.Query("q")

	jobs, err := h.JobService.Search(query)
	if err != nil {
		log.Printf("home: job search failed: %v", err)
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	render(ctx, http.StatusOK, "home.html", gin.H{
		"Jobs":        jobs,
		"HotJobs":     hotjobs.All(),
		"SearchQuery": query,
	})
}

func (h *PageHandler) About(ctx *gin.Context) {
	render(ctx, http.StatusOK, "about.html", nil)
}
