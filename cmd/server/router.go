package main

import (
	"context"
	"strings"
	"time"

	"profile-hub/cmd/server/handlers"
	authHandlers "profile-hub/cmd/server/handlers/auth"
	"profile-hub/cmd/server/handlers/httperr"
	profileHandlers "profile-hub/cmd/server/handlers/profile"
	"profile-hub/cmd/server/middlewares"
	"profile-hub/internal/clients/mongo"
	"profile-hub/internal/config"
	"profile-hub/internal/logger"
	authServices "profile-hub/internal/services/auth"
	profileServices "profile-hub/internal/services/profile"
	"profile-hub/internal/utils/validate"

	_ "profile-hub/docs" // Load swagger docs

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/oklog/ulid/v2"
)

const (
	RateLimitExpiration = 1 * time.Minute
)

// setupRouter configures and returns a Fiber app with all routes
func setupRouter(ctx context.Context, cfg config.Config) *fiber.App {

	v := validate.New()

	// Validate JWT algorithm at boot
	alg := strings.ToUpper(cfg.JWTAlgorithm)
	switch alg {
	case "HS256":
		// Valid algorithm
	default:
		logger.L().Error(authServices.ErrUnsupportedJWTAlg.Error(), "algorithm", cfg.JWTAlgorithm)
		panic(authServices.ErrUnsupportedJWTAlg.Error() + ": " + cfg.JWTAlgorithm)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return ulid.Make().String() },
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Authorization",
	}))

	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app)
	}

	// Health check endpoint, outside the API surface to avoid logging
	app.Get("/healthz", handlers.Healthz)

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Get("/", handlers.Root)

	var api fiber.Router
	if cfg.RequestLoggingEnabled {
		api = app.Group("/api", fiberlogger.New())
		logger.L().Info("request logging enabled")
	} else {
		api = app.Group("/api")
		logger.L().Info("request logging disabled")
	}

	api.Get("/test", handlers.APITest)

	usersRepo, newUsersRepoErr := mongo.NewUsersRepo(ctx, mongo.DB())
	if newUsersRepoErr != nil {
		logger.L().Error("failed to create users repository", "error", newUsersRepoErr)
		panic(newUsersRepoErr)
	}

	protect := middlewares.Protect(cfg)
	limiterMW := middlewares.BuildRateLimiter(cfg.SignInRatePerMin, RateLimitExpiration)

	// Auth routes
	authSvc := authServices.NewService(usersRepo, cfg, logger.L())
	authH := authHandlers.NewHandlers(authSvc, v)

	authGrp := api.Group("/auth")
	authGrp.Get("/", handlers.AuthDocs)
	authGrp.Get("/test", handlers.AuthTest)
	authGrp.Get("/register", handlers.RegisterDocs)
	authGrp.Get("/login", handlers.LoginDocs)
	authGrp.Post("/register", authH.Register)
	authGrp.Post("/login", limiterMW, authH.Login)

	// Profile routes: docs stay public, everything else sits behind protect
	profileSvc := profileServices.NewService(usersRepo, logger.L())
	profileH := profileHandlers.NewHandlers(profileSvc, v)

	api.Get("/profile/docs", handlers.ProfileDocs)

	profileGrp := api.Group("/profile", protect)
	profileGrp.Get("/", profileH.Get)
	profileGrp.Put("/", profileH.Update)
	profileGrp.Delete("/", profileH.Delete)

	// Terminal catch-all: anything unmatched is a JSON 404
	app.Use(handlers.NotFound)

	return app
}
