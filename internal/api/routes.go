package api

import (
	"github.com/gin-gonic/gin"

	"peakform/coach-app/internal/config"
)

// SetupRoutes configures the API routes on the given Gin engine.
func SetupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	programHandler *ProgramHandler,
	sessionHandler *SessionHandler,
	exerciseHandler *ExerciseHandler,
	assignmentHandler *AssignmentHandler,
) {
	v1 := router.Group("/api/v1")

	// Public authentication routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Program cover images: stable links that redirect to presigned S3
	// URLs. Public so <img> tags can load them without a bearer token.
	v1.GET("/files/programs/:imageId", programHandler.Image)

	// Routes for any authenticated user
	authed := v1.Group("")
	authed.Use(AuthMiddleware(cfg.JWT.Secret))
	{
		authed.GET("/me", userHandler.Me)
		authed.PUT("/me", userHandler.UpdateMe)

		authed.GET("/programs", programHandler.List)
		authed.GET("/programs/:programId", programHandler.Get)
		authed.GET("/programs/:programId/sessions", sessionHandler.ListForProgram)

		authed.GET("/trainings/:sessionId", sessionHandler.Get)
		authed.GET("/trainings/:sessionId/exercises", exerciseHandler.ListForSession)

		authed.GET("/library", exerciseHandler.ListLibrary)
		authed.GET("/assignments", assignmentHandler.ListMine)
	}

	// Coach-only mutations; ownership is still enforced in the services.
	coach := v1.Group("")
	coach.Use(AuthMiddleware(cfg.JWT.Secret), CoachMiddleware())
	{
		coach.POST("/programs", programHandler.Create)
		coach.PUT("/programs/:programId", programHandler.Update)
		coach.DELETE("/programs/:programId", programHandler.Delete)
		coach.POST("/programs/:programId/publish", programHandler.Publish)
		coach.POST("/programs/:programId/unpublish", programHandler.Unpublish)
		coach.POST("/programs/:programId/image-upload-url", programHandler.ImageUploadURL)

		coach.POST("/programs/:programId/sessions", sessionHandler.CreateForProgram)
		coach.PUT("/trainings/:sessionId", sessionHandler.Update)
		coach.DELETE("/trainings/:sessionId", sessionHandler.Delete)

		coach.POST("/trainings/:sessionId/exercises", exerciseHandler.CreateForSession)
		coach.PUT("/trainings/:sessionId/exercises/:exerciseId", exerciseHandler.Update)
		coach.DELETE("/trainings/:sessionId/exercises/:exerciseId", exerciseHandler.Delete)

		coach.POST("/programs/:programId/assignments", assignmentHandler.Create)
		coach.DELETE("/assignments/:assignmentId", assignmentHandler.Deactivate)
	}

	// Administrative surface, guarded by a shared secret header.
	admin := router.Group("/api/admin")
	admin.Use(AdminMiddleware(cfg.Admin.Secret))
	{
		admin.DELETE("/users/:userId", userHandler.AdminDeleteUser)
	}
}
