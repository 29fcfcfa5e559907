package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/config"
	"github.com/cherryclub/campus-api/database"
	auth_handlers "github.com/cherryclub/campus-api/handlers/auth"
	home_handlers "github.com/cherryclub/campus-api/handlers/home"
	join_handlers "github.com/cherryclub/campus-api/handlers/join"
	regions_handlers "github.com/cherryclub/campus-api/handlers/regions"
	training_handlers "github.com/cherryclub/campus-api/handlers/training"
	users_handlers "github.com/cherryclub/campus-api/handlers/users"
	"github.com/cherryclub/campus-api/services"
	"github.com/cherryclub/campus-api/utils/auth"
	"github.com/cherryclub/campus-api/utils/cache"
	"github.com/cherryclub/campus-api/utils/middleware"
	"github.com/cherryclub/campus-api/utils/response"
)

// SetupRoutes wires middleware, services and handlers onto the app
func SetupRoutes(app *fiber.App, store *database.GORMStore, env *config.EnvironmentVariable) error {
	db := store.DB()

	jwtIssuer := env.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "cherryclub-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: env.JWT_SECRET,
		Expiry: auth.AccessTokenExpiry,
		Issuer: jwtIssuer,
	})

	// Redis backs brute force lockouts and email verification codes
	redisURL := env.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection and email verification will be degraded.", err)
	}

	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	var verificationService *services.VerificationService
	if redisCache != nil {
		verificationService = services.NewVerificationService(redisCache)
	}
	emailService := services.NewEmailService(services.SMTPConfig{
		Host: env.SMTP_HOST,
		Port: env.SMTP_PORT,
		User: env.SMTP_USER,
		Pass: env.SMTP_PASS,
		From: env.SMTP_FROM,
	})
	statsService := services.NewStatsService(db)

	var spacesClient *services.SpacesClient
	if env.SPACES_ACCESS_KEY != "" && env.SPACES_BUCKET != "" {
		spacesClient, err = services.NewSpacesClient(services.SpacesConfig{
			AccessKey: env.SPACES_ACCESS_KEY,
			SecretKey: env.SPACES_SECRET_KEY,
			Bucket:    env.SPACES_BUCKET,
			Region:    env.SPACES_REGION,
			Endpoint:  env.SPACES_ENDPOINT,
			CDNURL:    os.Getenv("SPACES_CDN_URL"),
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize Spaces client: %v. Hero images will be empty.", err)
		}
	}

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection, verificationService, emailService)
	joinHandler := join_handlers.NewJoinHandler(db)
	usersHandler := users_handlers.NewUsersHandler(db)
	regionsHandler := regions_handlers.NewRegionsHandler(db)
	homeHandler := home_handlers.NewHomeHandler(db, statsService, spacesClient)
	trainingHandler := training_handlers.NewTrainingHandler(db)

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,
		RateLimitWindow:   1 * time.Minute,
	})

	// Health check endpoint (public)
	app.Get("/ping", func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return response.InternalServerError(c, "Database unreachable")
		}
		return response.Success(c, fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Home routes (public)
	homeGroup := api.Group("/home")
	homeGroup.Get("/clubStatus", homeHandler.ClubStatus)
	homeGroup.Get("/regionMap", homeHandler.RegionMap)
	homeGroup.Get("/clubInfo", homeHandler.ClubInfo)
	homeGroup.Put("/clubInfo", authMiddleware.RequireAdmin(), homeHandler.UpdateClubInfo)
	homeGroup.Put("/clubInfo/:id/image", authMiddleware.RequireAdmin(), homeHandler.UploadUniversityImage)
	homeGroup.Post("/clubMember", homeHandler.ClubMembers)
	homeGroup.Get("/heroImages", homeHandler.HeroImages)

	// Auth routes (public)
	authGroup := api.Group("/auth")
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckLockout(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/refresh-token", authHandler.RefreshToken)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/send-email-code", authHandler.SendEmailCode)
	authGroup.Post("/verify-email-code", authHandler.VerifyEmailCode)

	// Join routes (public, used by the application form)
	joinGroup := api.Group("/join")
	joinGroup.Post("/new-join", joinHandler.NewJoin)
	joinGroup.Post("/check-phone", joinHandler.CheckPhone)
	joinGroup.Get("/university", joinHandler.SearchUniversities)

	// Region/group pickers (public)
	api.Get("/regions", regionsHandler.ListRegions)
	api.Post("/regions", regionsHandler.ListGroups)

	// Member roster (authenticated; role updates are admin only)
	api.Get("/users", authMiddleware.Required(), usersHandler.List)
	api.Patch("/users", authMiddleware.RequireAdmin(), usersHandler.BulkPatch)

	// Training logs (authenticated)
	trainingGroup := api.Group("/trainings", authMiddleware.Required())
	trainingGroup.Post("/", trainingHandler.Create)
	trainingGroup.Get("/", trainingHandler.List)
	trainingGroup.Get("/club", trainingHandler.ClubList)
	trainingGroup.Put("/:id", trainingHandler.Update)

	return nil
}
