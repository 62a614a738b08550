package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/planora/planora-api/pkg/response"
)

type HealthHandler struct {
	Pool *pgxpool.Pool
	RDB  *redis.Client
}

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{Pool: pool, RDB: rdb}
}

// Health GET /api/health
// Redis is optional infrastructure: its state is reported but does not
// fail the check. Postgres down means the service cannot serve.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	pg := "up"
	if h.Pool == nil || h.Pool.Ping(ctx) != nil {
		pg = "down"
	}
	rd := "up"
	if h.RDB == nil || h.RDB.Ping(ctx).Err() != nil {
		rd = "down"
	}

	status := http.StatusOK
	if pg == "down" {
		status = http.StatusServiceUnavailable
	}
	data := gin.H{"postgres": pg, "redis": rd}
	if status == http.StatusOK {
		response.Success(c, status, data, "ok")
		return
	}
	response.Error[any](c, status, "degraded", data)
}
