package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karshdev/LeadBlock-BE/internal/config"
	"github.com/karshdev/LeadBlock-BE/internal/middleware"
	"github.com/karshdev/LeadBlock-BE/internal/modules/auth"
	"github.com/karshdev/LeadBlock-BE/internal/modules/lead"
	jwtsvc "github.com/karshdev/LeadBlock-BE/internal/pkg/jwt"
	"github.com/karshdev/LeadBlock-BE/internal/pkg/response"
	"github.com/karshdev/LeadBlock-BE/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	leadStore := storage.NewStore(cfg.LeadsFile)
	userStore := storage.NewStore(cfg.UsersFile)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := auth.NewRepository(userStore)
	if err := userRepo.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Fatal(err)
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	leadRepo := lead.NewRepository(leadStore)
	leadService := lead.NewService(leadRepo)
	leadHandler := lead.NewHandler(leadService)

	loginLimiter := middleware.NewLoginLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst)
	defer loginLimiter.Stop()

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		response.Message(c, http.StatusOK, "Server is running")
	})

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api, middleware.Auth(j), loginLimiter.Middleware())

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			lead.RegisterRoutes(protected, leadHandler)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	log.Printf("listening on :%s (leads=%s users=%s)", cfg.Port, cfg.LeadsFile, cfg.UsersFile)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
