package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"rewear.backend/internal/interfaces/http/handlers"
	"rewear.backend/internal/interfaces/http/middleware"
)

const (
	serviceName    = "rewear-backend"
	serviceVersion = "0.1.0"
)

type routeDeps struct {
	adminHandler    *handlers.AdminHandler
	categoryHandler *handlers.CategoryHandler
	authHandler     *handlers.AuthHandler
	itemHandler     *handlers.ItemHandler
	userHandler     *handlers.UserHandler
	authMiddleware  gin.HandlerFunc
	optionalAuth    gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine, frontendURL string) {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	var origins []string
	for _, o := range strings.Split(frontendURL, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		cfg.AllowOrigins = origins
	}

	r.Use(cors.New(cfg))
}

// registerStorageRoute serves locally stored assets. Browsers must not sniff
// them into anything other than the extension's image type.
func registerStorageRoute(r *gin.Engine, root string) {
	assets := r.Group("/storage", func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Next()
	})
	assets.Static("/", root)
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		v1.POST("/register", middleware.IdempotencyMiddleware(), d.authHandler.Register)
		v1.POST("/login", d.authHandler.Login)
		v1.POST("/refresh", d.authHandler.Refresh)
		v1.POST("/logout", d.authMiddleware, d.authHandler.Logout)
		v1.GET("/me", d.authMiddleware, d.authHandler.Me)

		// Category routes (public read, admin write)
		categories := v1.Group("/categories")
		{
			categories.GET("", d.categoryHandler.List)
			categories.GET("/:id", d.categoryHandler.Get)
		}
		categoriesAdmin := v1.Group("/categories")
		categoriesAdmin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			categoriesAdmin.POST("", d.categoryHandler.Create)
			categoriesAdmin.PATCH("/:id", d.categoryHandler.Update)
			categoriesAdmin.PUT("/:id", d.categoryHandler.Update)
			categoriesAdmin.DELETE("/:id", d.categoryHandler.Delete)
		}

		// Marketplace routes
		v1.GET("/items/:id", d.itemHandler.Get)
		items := v1.Group("/items")
		items.Use(d.authMiddleware)
		{
			items.POST("", middleware.IdempotencyMiddleware(), d.itemHandler.Create)
			items.POST("/:id/comments", d.itemHandler.AddComment)
			items.POST("/:id/favorite", d.itemHandler.Favorite)
			items.DELETE("/:id/favorite", d.itemHandler.Unfavorite)
			items.POST("/:id/orders", middleware.IdempotencyMiddleware(), d.itemHandler.Purchase)
		}

		// Social routes
		v1.GET("/users/:id/profile", d.optionalAuth, d.userHandler.Profile)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.POST("/:id/follow", d.userHandler.Follow)
			users.DELETE("/:id/follow", d.userHandler.Unfollow)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PATCH("/users/:id/status", d.adminHandler.UpdateUserStatus)
			admin.PUT("/users/:id/status", d.adminHandler.UpdateUserStatus)
			admin.GET("/items", d.adminHandler.ListItems)
			admin.DELETE("/items/:id", d.adminHandler.DeleteItem)
			admin.GET("/comments", d.adminHandler.ListComments)
			admin.DELETE("/comments/:id", d.adminHandler.DeleteComment)
			admin.GET("/orders", d.adminHandler.ListOrders)
			admin.GET("/statistics", d.adminHandler.Statistics)
		}
	}
}
