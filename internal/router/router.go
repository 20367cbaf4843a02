package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/handlers"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/middleware"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/services"
)

// New assembles the engine: session store, identity middleware, services,
// handlers, and the route table. templatesGlob points at the HTML views so
// tests can load them from a different working directory.
func New(sessionSecret string, db *gorm.DB, templatesGlob string) *gin.Engine {
	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	pageHandler := handlers.NewPageHandler(jobService)
	authHandler := handlers.NewAuthHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService, userService, applicationService)
	applyHandler := handlers.NewApplyHandler(jobService, applicationService)

	eng := gin.Default()
	eng.LoadHTMLGlob(templatesGlob)

	store := cookie.NewStore([]byte(sessionSecret))
	eng.Use(sessions.Sessions("jobportal_session", store))
	eng.Use(middleware.Identify(userService))

	eng.GET("/", pageHandler.Home)
	eng.GET("/about", pageHandler.About)
	eng.GET("/health", handlers.HealthCheck)

	eng.GET("/register", authHandler.RegisterForm)
	eng.POST("/register", authHandler.Register)
	eng.GET("/login", authHandler.LoginForm)
	eng.POST("/login", authHandler.Login)
	eng.GET("/logout", authHandler.Logout)

	// The application view is public on GET; the handler gates the POST to
	// authenticated job-seekers itself.
	eng.GET("/apply/:id", applyHandler.ApplyForm)
	eng.POST("/apply/:id", applyHandler.Apply)

	authed := eng.Group("/", middleware.RequireLogin())
	authed.GET("/dashboard", jobHandler.Dashboard)
	authed.GET("/post-job", jobHandler.PostJobForm)
	authed.POST("/post-job", jobHandler.PostJob)
	authed.GET("/edit-job/:id", jobHandler.EditJobForm)
	authed.POST("/edit-job/:id", jobHandler.EditJob)
	authed.POST("/delete-job/:id", jobHandler.DeleteJob)

	return eng
}
