package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"ouibooking.backend/internal/interfaces/http/handlers"
	"ouibooking.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	userHandler      *handlers.UserHandler
	botHandler       *handlers.BotHandler
	wizardHandler    *handlers.WizardHandler
	taxonomyHandler  *handlers.TaxonomyHandler
	dashboardHandler *handlers.DashboardHandler
	authMiddleware   gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public, except /me and /logout)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", d.authHandler.Signup)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Taxonomy routes (public)
		taxonomy := v1.Group("/taxonomy")
		{
			taxonomy.GET("/categories", d.taxonomyHandler.ListCategories)
			taxonomy.GET("/industries", d.taxonomyHandler.ListIndustries)
			taxonomy.GET("/languages", d.taxonomyHandler.ListLanguages)
		}

		// Bot routes (protected)
		bots := v1.Group("/bots")
		bots.Use(d.authMiddleware)
		{
			bots.GET("", d.botHandler.ListBots)
			bots.POST("", d.botHandler.CreateBot)
			bots.GET("/:id", d.botHandler.GetBot)
			bots.PATCH("/:id", d.botHandler.UpdateBot)
			bots.DELETE("/:id", d.botHandler.DeleteBot)
		}

		// Wizard routes (protected)
		wizard := v1.Group("/wizard")
		wizard.Use(d.authMiddleware)
		{
			wizard.GET("/steps", d.wizardHandler.ListSteps)
			wizard.GET("/industries", d.wizardHandler.ListIndustries)
			wizard.POST("/drafts", d.wizardHandler.StartDraft)
			wizard.GET("/drafts/:id", d.wizardHandler.GetDraft)
			wizard.PATCH("/drafts/:id", d.wizardHandler.UpdateDraft)
			wizard.DELETE("/drafts/:id", d.wizardHandler.CancelDraft)
			wizard.POST("/drafts/:id/advance", d.wizardHandler.Advance)
			wizard.POST("/drafts/:id/retreat", d.wizardHandler.Retreat)
			wizard.POST("/drafts/:id/submit", d.wizardHandler.Submit)
		}

		// Dashboard routes (protected, platform view admin-only)
		dashboard := v1.Group("/dashboard")
		dashboard.Use(d.authMiddleware)
		{
			dashboard.GET("/stats", d.dashboardHandler.GetUserStats)
			dashboard.GET("/platform", middleware.RequireAdmin(), d.dashboardHandler.GetPlatformStats)
		}

		// Users-management routes (admin only)
		users := v1.Group("/users")
		users.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			users.GET("", d.userHandler.ListUsers)
			users.POST("", d.userHandler.AddUser)
			users.GET("/:id", d.userHandler.GetUser)
			users.PATCH("/:id", d.userHandler.UpdateUser)
			users.DELETE("/:id", d.userHandler.DeleteUser)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, X-Session-Id, Accept-Language")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "ouibooking-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
