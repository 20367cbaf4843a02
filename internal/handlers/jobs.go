package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/dtos"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/middleware"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/models"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/services"
)

type JobHandler struct {
	JobService         *services.JobService
	UserService        *services.UserService
	ApplicationService *services.ApplicationService
}

func NewJobHandler(jobs *services.JobService, users *services.UserService, apps *services.ApplicationService) *JobHandler {
	return &JobHandler{
		JobService:         jobs,
		UserService:        users,
		ApplicationService: apps,
	}
}

// Dashboard branches strictly on the caller's role:
//
//	employer  -> jobs they posted
//	jobseeker -> their applications, each with the job preloaded
//	admin     -> every user and every job
//
// Any other role value is forbidden. The default branch stays even though
// registration only admits the three known roles.
func (h *JobHandler) Dashboard(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	switch user.Role {
	case models.RoleEmployer:
		jobs, err := h.JobService.ListByEmployer(user.ID)
		if err != nil {
			log.Printf("dashboard: employer jobs: %v", err)
			ctx.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		render(ctx, http.StatusOK, "dashboard.html", gin.H{"Jobs": jobs})

	case models.RoleJobseeker:
		apps, err := h.ApplicationService.ListForUser(user.ID)
		if err != nil {
			log.Printf("dashboard: applications: %v", err)
			ctx.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		render(ctx, http.StatusOK, "dashboard.html", gin.H{"Applications": apps})

	case models.RoleAdmin:
		users, err := h.UserService.ListAll()
		if err != nil {
			log.Printf("dashboard: users: %v", err)
			ctx.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		jobs, err := h.JobService.ListAll()
		if err != nil {
			log.Printf("dashboard: jobs: %v", err)
			ctx.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		render(ctx, http.StatusOK, "dashboard.html", gin.H{"Users": users, "Jobs": jobs})

	default:
		ctx.AbortWithStatus(http.StatusForbidden)
	}
}

func (h *JobHandler) PostJobForm(ctx *gin.Context) {
	if middleware.CurrentUser(ctx).Role != models.RoleEmployer {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}
	render(ctx, http.StatusOK, "post_job.html", nil)
}

// PostJob creates a listing owned by the caller. The employer reference is
// taken from the session, never from the form, so nobody can post on another
// employer's behalf.
func (h *JobHandler) PostJob(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user.Role != models.RoleEmployer {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}

	var form dtos.JobForm
	if err := ctx.ShouldBind(&form); err != nil {
		render(ctx, http.StatusBadRequest, "post_job.html", gin.H{
			"Error": "All fields are required.",
		})
		return
	}

	if _, err := h.JobService.Create(user.ID, &form); err != nil {
		log.Printf("post-job: %v", err)
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	addFlash(ctx, "success", "Job posted successfully!")
	ctx.Redirect(http.StatusFound, "/dashboard")
}

func (h *JobHandler) EditJobForm(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user.Role != models.RoleEmployer {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}

	job, ok := h.lookupJob(ctx)
	if !ok {
		return
	}
	if job.EmployerID != user.ID {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}
	render(ctx, http.StatusOK, "edit_job.html", gin.H{"Job": job})
}

// EditJob overwrites the descriptive fields of a job the caller owns.
// Non-owners get 403, same as delete.
func (h *JobHandler) EditJob(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user.Role != models.RoleEmployer {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}

	job, ok := h.lookupJob(ctx)
	if !ok {
		return
	}
	if job.EmployerID != user.ID {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}

	var form dtos.JobForm
	if err := ctx.ShouldBind(&form); err != nil {
		render(ctx, http.StatusBadRequest, "edit_job.html", gin.H{
			"Job":   job,
			"Error": "All fields are required.",
		})
		return
	}

	_, err := h.JobService.Update(job.ID, user.ID, &form)
	switch {
	case err == nil:
		addFlash(ctx, "success", "Job updated successfully!")
		ctx.Redirect(http.StatusFound, "/dashboard")
	case errors.Is(err, services.ErrNotJobOwner):
		ctx.AbortWithStatus(http.StatusForbidden)
	default:
		log.Printf("edit-job: %v", err)
		ctx.String(http.StatusInternalServerError, "something went wrong")
	}
}

// DeleteJob removes the job and, by policy, its applications.
func (h *JobHandler) DeleteJob(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user.Role != models.RoleEmployer {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}

	job, ok := h.lookupJob(ctx)
	if !ok {
		return
	}

	err := h.JobService.Delete(job.ID, user.ID)
	switch {
	case err == nil:
		addFlash(ctx, "success", "Job deleted successfully!")
		ctx.Redirect(http.StatusFound, "/dashboard")
	case errors.Is(err, services.ErrNotJobOwner):
		ctx.AbortWithStatus(http.StatusForbidden)
	default:
		log.Printf("delete-job: %v", err)
		ctx.String(http.StatusInternalServerError, "something went wrong")
	}
}

// lookupJob resolves the :id route param. On a bad id or missing job it
// writes a 404 and reports false.
func (h *JobHandler) lookupJob(ctx *gin.Context) (*models.Job, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.AbortWithStatus(http.StatusNotFound)
		return nil, false
	}

	job, err := h.JobService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			ctx.AbortWithStatus(http.StatusNotFound)
			return nil, false
		}
		log.Printf("job lookup: %v", err)
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return nil, false
	}
	return job, true
}
