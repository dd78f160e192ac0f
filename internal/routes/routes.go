// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"fixmycity/internal/config"
	"fixmycity/internal/handlers"
	"fixmycity/internal/middleware"
	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
	"fixmycity/internal/services/auth"
	"fixmycity/internal/services/community"
	"fixmycity/internal/services/complaint"
	"fixmycity/internal/services/dashboard"
	"fixmycity/internal/services/directory"
	"fixmycity/internal/services/leaderboard"
	"fixmycity/internal/services/notification"
	"fixmycity/internal/share"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	complaintRepo := repositories.NewComplaintRepository(db)
	communityRepo := repositories.NewCommunityRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Initialize auth service and handler
	authService := auth.NewService(userRepo, repositories.CacheService, repositories.CacheService, auth.Config{
		DemoMode:       config.IsDemoMode(),
		SimulatedDelay: config.GetDurationEnv("DEMO_LOGIN_DELAY", 0),
	})
	authHandler := handlers.NewAuthHandler(authService)

	// Initialize services in dependency order
	notificationService := notification.NewService(notificationRepo)
	complaintService := complaint.NewService(complaintRepo, notificationService)
	communityService := community.NewService(communityRepo)
	leaderboardService := leaderboard.NewService(complaintRepo, userRepo, db)
	dashboardService := dashboard.NewService(complaintRepo, communityRepo, leaderboardService)
	directoryService := directory.NewService(db)

	shareBuilder := share.NewBuilder(config.GetEnv("PUBLIC_BASE_URL", "http://localhost:3000"))

	// Initialize handlers
	complaintHandler := handlers.NewComplaintHandler(complaintService, userRepo, shareBuilder)
	communityHandler := handlers.NewCommunityHandler(communityService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	profileHandler := handlers.NewProfileHandler(userRepo, repositories.CacheService)

	app.Get("/health", handlers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Fix My City API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Public routes
	api := app.Group("/api")
	api.Post("/login", authHandler.LoginUser)
	api.Post("/register", authHandler.RegisterUser)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Post("/otp/send", authHandler.SendOTP)
	api.Post("/otp/verify", authHandler.VerifyOTP)
	api.Get("/translations/:lang", profileHandler.GetTranslations)
	api.Get("/locations", directoryHandler.ListLocations)
	api.Get("/emergency", directoryHandler.EmergencyContacts)

	// Create middleware instance
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Protected routes with auth middleware
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.LogoutUser)
	protected.Get("/session", authHandler.GetSession)

	// Dashboard
	protected.Get("/dashboard", dashboardHandler.GetDashboard)

	// Service directory
	protected.Get("/services", directoryHandler.ListServices)
	protected.Get("/schemes", directoryHandler.ListSchemes)
	protected.Get("/announcements", directoryHandler.ListAnnouncements)

	// Complaints
	complaints := protected.Group("/complaints")
	complaints.Get("/", complaintHandler.ListComplaints)
	complaints.Post("/", complaintHandler.CreateComplaint)
	complaints.Post("/voice-draft", complaintHandler.DraftFromVoice)
	complaints.Post("/attachments", complaintHandler.UploadAttachment)
	complaints.Get("/:id", complaintHandler.GetComplaint)
	complaints.Post("/:id/vote", complaintHandler.ToggleVote)
	complaints.Get("/:id/share", complaintHandler.ShareLinks)

	// Community groups
	groups := protected.Group("/groups")
	groups.Get("/", communityHandler.ListGroups)
	groups.Get("/posts", communityHandler.ListAllPosts)
	groups.Post("/:id/membership", communityHandler.ToggleMembership)
	groups.Get("/:id/posts", communityHandler.ListPosts)

	// Leaderboard
	board := protected.Group("/leaderboard")
	board.Get("/", leaderboardHandler.TopContributors)
	board.Get("/heroes", leaderboardHandler.MonthlyHeroes)
	board.Get("/summary", leaderboardHandler.Summary)

	// Notifications
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationHandler.ListNotifications)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	// Profile and preferences
	profile := protected.Group("/profile")
	profile.Get("/", profileHandler.GetProfile)
	profile.Put("/", profileHandler.UpdateProfile)
	profile.Post("/photo", profileHandler.UploadPhoto)
	profile.Post("/documents", profileHandler.UploadDocument)
	profile.Get("/language", profileHandler.GetLanguage)
	profile.Put("/language", profileHandler.SetLanguage)

	// Admin routes
	admin := app.Group("/api/admin", authMiddleware.Handler,
		middleware.RequirePermission(models.PermissionComplaintManage))
	admin.Put("/complaints/:id/status", complaintHandler.UpdateStatus)
	admin.Post("/complaints/:id/response", complaintHandler.Respond)
}
