package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/hotjobs"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/middleware"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/services"
)

// ApplyHandler serves /apply/:id in two modes. A "hot-<n>" id refers to the
// in-memory demo catalog: the confirmation flow runs end to end but nothing
// is persisted, by design. A plain numeric id refers to a stored job and
// creates an Application row.
type ApplyHandler struct {
	JobService         *services.JobService
	ApplicationService *services.ApplicationService
}

func NewApplyHandler(jobs *services.JobService, apps *services.ApplicationService) *ApplyHandler {
	return &ApplyHandler{JobService: jobs, ApplicationService: apps}
}

// ApplyForm renders the confirmation view for either mode.
func (h *ApplyHandler) ApplyForm(ctx *gin.Context) {
	rawID := ctx.Param("id")

	if strings.HasPrefix(rawID, hotjobs.IDPrefix) {
		hot, ok := h.lookupHotJob(ctx, rawID)
		if !ok {
			return
		}
		render(ctx, http.StatusOK, "apply.html", gin.H{"HotJob": hot, "IsHot": true})
		return
	}

	job, ok := h.lookupStoredJob(ctx, rawID)
	if !ok {
		return
	}
	render(ctx, http.StatusOK, "apply.html", gin.H{"Job": job, "IsHot": false})
}

// Apply handles the submission. Both modes require an authenticated
// job-seeker; anyone else is sent to login, matching the GET-is-public,
// POST-is-gated shape of the original flow.
func (h *ApplyHandler) Apply(ctx *gin.Context) {
	rawID := ctx.Param("id")

	if strings.HasPrefix(rawID, hotjobs.IDPrefix) {
		if _, ok := h.lookupHotJob(ctx, rawID); !ok {
			return
		}
		if !h.requireJobseeker(ctx) {
			return
		}
		// Intentional no-op: hot jobs demo the flow without writing a row.
		addFlash(ctx, "success", "Application submitted for hot job! (Note: hot jobs are demo only)")
		ctx.Redirect(http.StatusFound, "/dashboard")
		return
	}

	job, ok := h.lookupStoredJob(ctx, rawID)
	if !ok {
		return
	}
	if !h.requireJobseeker(ctx) {
		return
	}

	user := middleware.CurrentUser(ctx)
	_, err := h.ApplicationService.Apply(job.ID, user.ID)
	switch {
	case err == nil:
		addFlash(ctx, "success", "Application submitted successfully!")
		ctx.Redirect(http.StatusFound, "/dashboard")
	case errors.Is(err, services.ErrAlreadyApplied):
		addFlash(ctx, "warning", "You have already applied to this job.")
		ctx.Redirect(http.StatusFound, "/dashboard")
	default:
		log.Printf("apply: %v", err)
		ctx.String(http.StatusInternalServerError, "something went wrong")
	}
}

func (h *ApplyHandler) requireJobseeker(ctx *gin.Context) bool {
	user := middleware.CurrentUser(ctx)
	if user == nil || user.Role != models.RoleJobseeker {
		ctx.Redirect(http.StatusFound, "/login")
		ctx.Abort()
		return false
	}
	return true
}

func (h *ApplyHandler) lookupHotJob(ctx *gin.Context, rawID string) (*hotjobs.HotJob, bool) {
	id, ok := hotjobs.ParseID(rawID)
	if !ok {
		addFlash(ctx, "warning", "Invalid hot job selected.")
		ctx.Redirect(http.StatusFound, "/")
		ctx.Abort()
		return nil, false
	}
	hot := hotjobs.ByID(id)
	if hot == nil {
		addFlash(ctx, "warning", "Hot job not found.")
		ctx.Redirect(http.StatusFound, "/")
		ctx.Abort()
		return nil, false
	}
	return hot, true
}

func (h *ApplyHandler) lookupStoredJob(ctx *gin.Context, rawID string) (*models.Job, bool) {
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		addFlash(ctx, "warning", "Job not found.")
		ctx.Redirect(http.StatusFound, "/")
		ctx.Abort()
		return nil, false
	}

	job, err := h.JobService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			addFlash(ctx, "warning", "Job not found.")
			ctx.Redirect(http.StatusFound, "/")
			ctx.Abort()
			return nil, false
		}
		log.Printf("apply: job lookup: %v", err)
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return nil, false
	}
	return job, true
}
