package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/planora/planora-api/internal/interface/http"
)

// EventModule wires the event-record CRUD routes.
type EventModule struct {
	Handler *handlers.EventHandler
}

func NewEventModule(h *handlers.EventHandler) *EventModule {
	return &EventModule{Handler: h}
}

func (m *EventModule) Register(rg *gin.RouterGroup) {
	rg.POST("/events", m.Handler.Create)
	rg.GET("/events/:userId", m.Handler.List)
	rg.GET("/events/:userId/search", m.Handler.Search)
	rg.PUT("/events/:id", m.Handler.Update)
	rg.DELETE("/events/:id", m.Handler.Delete)
}
