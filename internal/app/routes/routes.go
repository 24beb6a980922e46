package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/controllers"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	articleController *controllers.ArticleController,
	tagController *controllers.TagController,
	subjectController *controllers.SubjectController,
	employeeController *controllers.EmployeeController,
	publicationController *controllers.PublicationController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
	}

	// --- Public read routes ---
	articles := v1.Group("/articles")
	{
		articles.GET("", articleController.List)
		articles.GET("/:id", articleController.GetByID)
		articles.GET("/slug/:slug", articleController.GetBySlug)
	}

	tags := v1.Group("/tags")
	{
		tags.GET("", tagController.GetAll)
	}

	subjects := v1.Group("/subjects")
	{
		subjects.GET("", subjectController.GetAll)
		subjects.GET("/semesters", subjectController.GetGroupedBySemester)
		subjects.GET("/:id", subjectController.GetByID)
	}

	employees := v1.Group("/employees")
	{
		employees.GET("", employeeController.GetAll)
		employees.GET("/:id", employeeController.GetByID)
	}

	publications := v1.Group("/library-publications")
	{
		publications.GET("", publicationController.List)
		publications.GET("/:id", publicationController.GetByID)
		publications.GET("/slug/:slug", publicationController.GetBySlug)
	}

	// --- Authenticated routes ---
	// Role checks (admin-only tag writes, owner-or-admin article removal) live
	// in the services; the middleware only resolves the session.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)

		articlesProtected := authenticated.Group("/articles")
		{
			articlesProtected.POST("", articleController.Create)
			articlesProtected.PUT("/:id", articleController.Update)
			articlesProtected.DELETE("/:id", articleController.Delete)
		}

		tagsProtected := authenticated.Group("/tags")
		{
			tagsProtected.POST("", tagController.Create)
			tagsProtected.PUT("/:id", tagController.Update)
			tagsProtected.DELETE("/:id", tagController.Delete)
			tagsProtected.POST("/batch-remove", tagController.BatchRemove)
		}

		subjectsProtected := authenticated.Group("/subjects")
		{
			subjectsProtected.POST("", subjectController.Create)
			subjectsProtected.PUT("/:id", subjectController.Update)
			subjectsProtected.DELETE("/:id", subjectController.Delete)
			subjectsProtected.POST("/batch-remove", subjectController.BatchRemove)
		}

		employeesProtected := authenticated.Group("/employees")
		{
			employeesProtected.POST("", employeeController.Create)
			employeesProtected.PUT("/:id", employeeController.Update)
			employeesProtected.DELETE("/:id", employeeController.Delete)
		}

		publicationsProtected := authenticated.Group("/library-publications")
		{
			publicationsProtected.POST("", publicationController.Create)
			publicationsProtected.PUT("/:id", publicationController.Update)
			publicationsProtected.DELETE("/:id", publicationController.Delete)
			publicationsProtected.POST("/batch-remove", publicationController.BatchRemove)
		}

		users := authenticated.Group("/users")
		{
			users.GET("", userController.List)
			users.GET("/:id", userController.GetByID)
			users.PATCH("/:id/role", userController.UpdateRole)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
