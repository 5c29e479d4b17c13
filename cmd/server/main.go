package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"studio-api/internal/api"
	"studio-api/internal/events"
	"studio-api/internal/jwt"
	"studio-api/internal/repository"
	"studio-api/internal/service"
	"studio-api/internal/storage"
	"studio-api/internal/tracing"
	_ "studio-api/migrations"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables provided by Docker")
	}

	api.SetupGlobalHandler("studio-api")

	shutdownTracer, err := tracing.InitTracerProvider("studio-api")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations()
		return
	}

	db := connectDB()
	defer db.Close()

	blacklist := buildBlacklist()

	var eventPublisher events.EventPublisher
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	eventPublisher, err = events.NewNatsPublisher(natsURL)
	if err != nil {
		// the site keeps taking applications even without the mail pipeline
		log.Printf("WARNING: Failed to connect to NATS, email notifications disabled: %v", err)
		eventPublisher = nil
	} else {
		log.Println("Successfully connected to NATS.")
	}

	userRepo := repository.NewPostgresUserRepository(db)
	designRepo := repository.NewPostgresDesignRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	packageRepo := repository.NewPostgresPackageRepository(db)
	reviewRepo := repository.NewPostgresReviewRepository(db)
	faqRepo := repository.NewPostgresFAQRepository(db)
	quoteRepo := repository.NewPostgresQuoteRepository(db)
	consultationRepo := repository.NewPostgresConsultationRepository(db)
	teamRepo := repository.NewPostgresTeamRepository(db)
	contentRepo := repository.NewPostgresContentRepository(db)
	settingsRepo := repository.NewPostgresSettingsRepository(db)
	fileRepo := repository.NewPostgresFileRepository(db)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	uploadBaseURL := os.Getenv("UPLOAD_BASE_URL")
	if uploadBaseURL == "" {
		uploadBaseURL = "/uploads"
	}
	diskStore := storage.NewDiskStore(uploadDir, uploadBaseURL)

	var presigner *storage.MediaPresigner
	if os.Getenv("S3_BUCKET_NAME") != "" {
		presigner, err = storage.NewMediaPresigner()
		if err != nil {
			log.Printf("WARNING: Failed to configure S3 presigner: %v", err)
			presigner = nil
		}
	}

	authService := service.NewAuthService(userRepo, blacklist)
	designService := service.NewDesignService(designRepo, categoryRepo)
	packageService := service.NewPackageService(packageRepo)
	reviewService := service.NewReviewService(reviewRepo, eventPublisher)
	faqService := service.NewFAQService(faqRepo)
	applicationService := service.NewApplicationService(quoteRepo, consultationRepo, packageRepo, eventPublisher)
	teamService := service.NewTeamService(teamRepo, contentRepo)
	contentService := service.NewContentService(contentRepo, settingsRepo)
	uploadService := service.NewUploadService(fileRepo, diskStore, presigner)
	statsService := service.NewStatsService(quoteRepo, consultationRepo, reviewRepo, designRepo, fileRepo)
	searchService := service.NewSearchService(designRepo, packageRepo)

	authHandler := api.NewAuthHandler(authService)
	designHandler := api.NewDesignHandler(designService)
	packageHandler := api.NewPackageHandler(packageService)
	reviewHandler := api.NewReviewHandler(reviewService)
	faqHandler := api.NewFAQHandler(faqService)
	applicationHandler := api.NewApplicationHandler(applicationService)
	teamHandler := api.NewTeamHandler(teamService)
	contentHandler := api.NewContentHandler(contentService)
	uploadHandler := api.NewUploadHandler(uploadService)
	adminHandler := api.NewAdminHandler(statsService, searchService)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "degraded",
				"service": "studio-api",
				"details": fiber.Map{"database": "unreachable"},
			})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": "studio-api"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Static(uploadBaseURL, uploadDir)

	auth := api.AuthMiddleware(userRepo, blacklist)
	admin := api.AdminMiddleware()

	v1 := app.Group("/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", auth, authHandler.Logout)
	authRoutes.Get("/me", auth, authHandler.Me)
	authRoutes.Put("/me", auth, authHandler.UpdateMe)
	authRoutes.Post("/change-password", auth, authHandler.ChangePassword)

	designRoutes := v1.Group("/designs")
	designRoutes.Get("/", designHandler.ListDesigns)
	designRoutes.Get("/slug/:slug", designHandler.GetDesignBySlug)
	designRoutes.Get("/:id", designHandler.GetDesign)
	designRoutes.Post("/", auth, admin, designHandler.CreateDesign)
	designRoutes.Put("/:id", auth, admin, designHandler.UpdateDesign)
	designRoutes.Delete("/:id", auth, admin, designHandler.DeleteDesign)

	categoryRoutes := v1.Group("/categories")
	categoryRoutes.Get("/", designHandler.ListCategories)
	categoryRoutes.Post("/", auth, admin, designHandler.CreateCategory)
	categoryRoutes.Put("/:id", auth, admin, designHandler.UpdateCategory)
	categoryRoutes.Delete("/:id", auth, admin, designHandler.DeleteCategory)

	packageRoutes := v1.Group("/packages")
	packageRoutes.Get("/", packageHandler.ListPackages)
	packageRoutes.Get("/homepage", packageHandler.ListHomepagePackages)
	packageRoutes.Get("/slug/:slug", packageHandler.GetPackageBySlug)
	packageRoutes.Get("/:id", packageHandler.GetPackage)
	packageRoutes.Post("/", auth, admin, packageHandler.CreatePackage)
	packageRoutes.Put("/:id", auth, admin, packageHandler.UpdatePackage)
	packageRoutes.Delete("/:id", auth, admin, packageHandler.DeletePackage)

	reviewRoutes := v1.Group("/reviews")
	reviewRoutes.Get("/", reviewHandler.ListPublicReviews)
	reviewRoutes.Post("/", auth, reviewHandler.CreateReview)
	reviewRoutes.Post("/anonymous", reviewHandler.CreateAnonymousReview)
	reviewRoutes.Get("/all", auth, admin, reviewHandler.ListAllReviews)
	reviewRoutes.Post("/:id/approve", auth, admin, reviewHandler.ApproveReview)
	reviewRoutes.Post("/:id/reject", auth, admin, reviewHandler.RejectReview)
	reviewRoutes.Put("/:id", auth, admin, reviewHandler.UpdateReview)
	reviewRoutes.Delete("/:id", auth, admin, reviewHandler.DeleteReview)

	faqRoutes := v1.Group("/faq")
	faqRoutes.Get("/", faqHandler.ListFAQ)
	faqRoutes.Post("/", auth, admin, faqHandler.CreateFAQ)
	faqRoutes.Put("/:id", auth, admin, faqHandler.UpdateFAQ)
	faqRoutes.Delete("/:id", auth, admin, faqHandler.DeleteFAQ)

	applicationRoutes := v1.Group("/applications")
	applicationRoutes.Post("/quote", applicationHandler.CreateQuote)
	applicationRoutes.Post("/consultation", applicationHandler.CreateConsultation)
	applicationRoutes.Get("/quote", auth, admin, applicationHandler.ListQuotes)
	applicationRoutes.Get("/quote/:id", auth, admin, applicationHandler.GetQuote)
	applicationRoutes.Patch("/quote/:id/status", auth, admin, applicationHandler.UpdateQuoteStatus)
	applicationRoutes.Delete("/quote/:id", auth, admin, applicationHandler.DeleteQuote)
	applicationRoutes.Get("/consultation", auth, admin, applicationHandler.ListConsultations)
	applicationRoutes.Get("/consultation/:id", auth, admin, applicationHandler.GetConsultation)
	applicationRoutes.Patch("/consultation/:id/status", auth, admin, applicationHandler.UpdateConsultationStatus)
	applicationRoutes.Delete("/consultation/:id", auth, admin, applicationHandler.DeleteConsultation)

	v1.Get("/about", teamHandler.GetAboutPage)
	v1.Put("/about", auth, admin, teamHandler.UpdateAbout)

	teamRoutes := v1.Group("/team")
	teamRoutes.Get("/", teamHandler.ListMembers)
	teamRoutes.Post("/", auth, admin, teamHandler.CreateMember)
	teamRoutes.Put("/reorder", auth, admin, teamHandler.ReorderMembers)
	teamRoutes.Put("/:id", auth, admin, teamHandler.UpdateMember)
	teamRoutes.Patch("/:id/toggle-active", auth, admin, teamHandler.ToggleMemberActive)
	teamRoutes.Delete("/:id", auth, admin, teamHandler.DeleteMember)

	contentRoutes := v1.Group("/content")
	contentRoutes.Get("/", contentHandler.ListBlocks)
	contentRoutes.Get("/:key", contentHandler.GetBlock)
	contentRoutes.Post("/", auth, admin, contentHandler.CreateBlock)
	contentRoutes.Put("/:key", auth, admin, contentHandler.UpdateBlock)
	contentRoutes.Delete("/:key", auth, admin, contentHandler.DeleteBlock)

	v1.Get("/contact-info", contentHandler.GetContactInfo)
	v1.Put("/contact-info", auth, admin, contentHandler.UpdateContactInfo)

	policyRoutes := v1.Group("/policies")
	policyRoutes.Get("/", contentHandler.ListPolicies)
	policyRoutes.Get("/:type", contentHandler.GetPolicy)
	policyRoutes.Post("/", auth, admin, contentHandler.CreatePolicy)
	policyRoutes.Put("/:type", auth, admin, contentHandler.UpdatePolicy)

	v1.Get("/config", contentHandler.GetPublicConfig)

	uploadRoutes := v1.Group("/uploads", auth, admin)
	uploadRoutes.Post("/", uploadHandler.Upload)
	uploadRoutes.Post("/presign", uploadHandler.PresignMediaUpload)
	uploadRoutes.Get("/", uploadHandler.ListFiles)
	uploadRoutes.Patch("/:id", uploadHandler.UpdateFileMeta)
	uploadRoutes.Delete("/:id", uploadHandler.DeleteFile)

	adminRoutes := v1.Group("/admin", auth, admin)
	adminRoutes.Get("/stats", adminHandler.GetDashboardStats)

	v1.Get("/search", adminHandler.Search)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Listening studio-api on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func buildBlacklist() jwt.Blacklist {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		log.Println("REDIS_ADDR not set, using in-process token blacklist")
		return jwt.NewMemoryBlacklist()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	return jwt.NewRedisBlacklist(client)
}

func databaseURL() string {
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)
}

func connectDB() *sqlx.DB {
	db, err := sqlx.Connect("pgx", databaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func handleMigrations() {
	fmt.Println("Running database migrations...")

	db, err := sql.Open("pgx", databaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}
