package router

import (
	"context"
	"net/http"
	"time"

	"companion_rental/internal/config"
	"companion_rental/internal/handler"
	"companion_rental/internal/middleware"
	"companion_rental/internal/repository"
	"companion_rental/internal/service"
	"companion_rental/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Store is the database handle the router needs: the repository surface plus a health ping.
type Store interface {
	repository.DB
	Ping(ctx context.Context) error
}

// Deps holds everything Setup wires together.
type Deps struct {
	DB     Store
	JWT    *utils.JWTUtil
	Config *config.Config
	Logger zerolog.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Setup builds the gin engine with every route registered.
func Setup(d Deps) *gin.Engine {
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}

	userRepo := repository.NewUserRepository(d.DB)
	packageRepo := repository.NewPackageRepository(d.DB)
	ratingRepo := repository.NewRatingRepository(d.DB)
	orderRepo := repository.NewOrderRepository(d.DB)
	messageRepo := repository.NewMessageRepository(d.DB)

	authService := service.NewAuthService(userRepo, d.JWT, d.Config.InitialAdminUsername, clock, d.Logger)
	userService := service.NewUserService(userRepo, d.Config.UploadsDir)
	packageService := service.NewPackageService(packageRepo, userRepo)
	ratingService := service.NewRatingService(ratingRepo, userRepo)
	orderService := service.NewOrderService(orderRepo, packageRepo)
	messageService := service.NewMessageService(messageRepo, userRepo)

	authenticator := middleware.NewAuthenticator(d.JWT, clock, d.Logger)
	adminGate := middleware.NewAdminGate(authService, d.Logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(d.Config.CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API RENTAL PACAR"})
	})
	r.GET("/health", func(c *gin.Context) {
		if err := d.DB.Ping(c.Request.Context()); err != nil {
			d.Logger.Error().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})
	r.Static("/uploads", d.Config.UploadsDir)

	api := r.Group("/api")
	handler.NewAuthHandler(authService, d.Logger).RegisterAuthRoutes(api, authenticator)
	handler.NewUserHandler(userService, d.Logger).RegisterUserRoutes(api, authenticator, adminGate)
	handler.NewPackageHandler(packageService, d.Logger).RegisterPackageRoutes(api, authenticator, adminGate)
	handler.NewRatingHandler(ratingService, d.Logger).RegisterRatingRoutes(api, authenticator, adminGate)
	handler.NewOrderHandler(orderService, d.Logger).RegisterOrderRoutes(api, authenticator, adminGate)
	handler.NewMessageHandler(messageService, d.Logger).RegisterMessageRoutes(api, authenticator)

	return r
}
