package modules

import (
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planora/planora-api/internal/container"
	handlers "github.com/planora/planora-api/internal/interface/http"
	"github.com/planora/planora-api/pkg/helpers"
	"github.com/planora/planora-api/pkg/response"
)

// DebugModule exposes the health check and, when enabled, process
// expvars plus the per-operation Redis counters.
type DebugModule struct {
	Health *handlers.HealthHandler
}

func NewDebugModule(h *handlers.HealthHandler) *DebugModule {
	return &DebugModule{Health: h}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Health.Health)

	if cfg := container.GetConfig(); cfg == nil || !cfg.DebugMetricsEnabled {
		return
	}
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
	rg.GET("/debug/stats", func(c *gin.Context) {
		stats, err := helpers.ReadOpStats(c.Request.Context(), container.GetRedis())
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "stats unavailable", err.Error())
			return
		}
		response.Success(c, http.StatusOK, stats, "operation counters")
	})
}
