package bootstrap

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/muhammad-hassn/portfolio/config"
	httpapi "github.com/muhammad-hassn/portfolio/internal/api/http"
	"github.com/muhammad-hassn/portfolio/internal/api/http/middleware"
	"github.com/muhammad-hassn/portfolio/internal/cache"
	"github.com/muhammad-hassn/portfolio/internal/githubapi"
	portfoliohttp "github.com/muhammad-hassn/portfolio/internal/portfolio/http"
	"github.com/muhammad-hassn/portfolio/internal/portfolio/repository"
	"github.com/muhammad-hassn/portfolio/internal/portfolio/service"
	"github.com/muhammad-hassn/portfolio/web"
)

type RouterDeps struct {
	Config *config.Config
	Logger zerolog.Logger
	DB     *sql.DB
	Cache  cache.Cache
	GitHub *githubapi.Client
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))

	if origins := dep.Config.Server.AllowedOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  origins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", middleware.AdminKeyHeader, middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))
	if dir := dep.Config.Server.MediaDir; dir != "" {
		r.Static("/media", dir)
	}

	var dbPinger httpapi.Pinger
	if dep.DB != nil {
		dbPinger = dep.DB
	}
	healthHandler := httpapi.NewHealthHandler(dep.Config.App.ServiceName, dep.Config.App.Version, dbPinger, dep.Cache, dep.GitHub)
	healthHandler.RegisterRoutes(r)

	repos := repository.NewRepositories(dep.DB)
	homeService := service.NewHomeService(service.StoresFrom(repos), dep.Cache, dep.GitHub)
	portfoliohttp.NewHomeHandler(homeService).Register(r)

	if key := dep.Config.Admin.APIKey; key != "" {
		admin := r.Group("/admin/api/v1")
		admin.Use(middleware.AdminKeyMiddleware(key))
		portfoliohttp.NewAdminHandler(repos).Register(admin)
	} else {
		dep.Logger.Warn().Msg("admin API disabled: no admin key configured")
	}

	return r, nil
}
