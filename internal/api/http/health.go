package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhammad-hassn/portfolio/internal/githubapi"
)

type HealthResponse struct {
	Status    string                     `json:"status"`
	Timestamp time.Time                  `json:"timestamp"`
	Service   string                     `json:"service"`
	Version   string                     `json:"version"`
	DB        string                     `json:"db,omitempty"`
	Cache     string                     `json:"cache,omitempty"`
	GitHub    *githubapi.MetricsSnapshot `json:"github,omitempty"`
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type CachePinger interface {
	Ping(ctx context.Context) error
}

type MetricsSource interface {
	Metrics() githubapi.MetricsSnapshot
}

type HealthHandler struct {
	serviceName string
	version     string
	db          Pinger
	cache       CachePinger
	github      MetricsSource
}

func NewHealthHandler(serviceName, version string, db Pinger, cache CachePinger, github MetricsSource) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		cache:       cache,
		github:      github,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
	defer cancel()

	dbStatus := "disabled"
	if h.db != nil {
		dbStatus = status(h.db.PingContext(pingCtx))
	}

	cacheStatus := ""
	if h.cache != nil {
		cacheStatus = status(h.cache.Ping(pingCtx))
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Cache:     cacheStatus,
	}
	if h.github != nil {
		snap := h.github.Metrics()
		snap.ErrorRatePct = snap.ErrorRate()
		resp.GitHub = &snap
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}

func status(err error) string {
	if err != nil {
		return "down"
	}
	return "up"
}
