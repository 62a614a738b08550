package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/planora/planora-api/internal/application"
	"github.com/planora/planora-api/internal/domain/entity"
	"github.com/planora/planora-api/pkg/response"
	"github.com/planora/planora-api/pkg/validation"
)

type EventHandler struct {
	Svc    *application.EventService
	Logger *logrus.Logger
}

func NewEventHandler(svc *application.EventService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Svc: svc, Logger: logger}
}

type createEventRequest struct {
	UserID      string    `json:"userId" binding:"required"`
	EventName   string    `json:"eventName" binding:"required"`
	Venue       string    `json:"venue" binding:"required"`
	DateTime    time.Time `json:"dateTime" binding:"required"`
	Value       *float64  `json:"value"`
	Status      *string   `json:"status"`
	Description *string   `json:"description"`
}

type updateEventRequest struct {
	UserID      *string    `json:"userId"`
	EventName   *string    `json:"eventName"`
	Venue       *string    `json:"venue"`
	DateTime    *time.Time `json:"dateTime"`
	Value       *float64   `json:"value"`
	Status      *string    `json:"status"`
	Description *string    `json:"description"`
}

type eventDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	EventName   string    `json:"eventName"`
	Venue       string    `json:"venue"`
	DateTime    time.Time `json:"dateTime"`
	Value       float64   `json:"value"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toEventDTO(e *entity.Event) eventDTO {
	return eventDTO{
		ID:          e.ID,
		UserID:      e.UserID,
		EventName:   e.EventName,
		Venue:       e.Venue,
		DateTime:    e.DateTime,
		Value:       e.Value,
		Status:      e.Status,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// Create POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), application.CreateEventInput{
		UserID:      req.UserID,
		EventName:   req.EventName,
		Venue:       req.Venue,
		DateTime:    req.DateTime,
		Value:       req.Value,
		Status:      req.Status,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toEventDTO(e), "event created successfully")
}

// List GET /api/events/:userId
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.Svc.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	out := make([]eventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, toEventDTO(e))
	}
	response.Success(c, http.StatusOK, out, "events")
}

// Search GET /api/events/:userId/search?q=
func (h *EventHandler) Search(c *gin.Context) {
	q := c.Query("q")
	hits, err := h.Svc.Search(c.Request.Context(), c.Param("userId"), q, 10)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results")
}

// Update PUT /api/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateEventInput{
		UserID:      req.UserID,
		EventName:   req.EventName,
		Venue:       req.Venue,
		DateTime:    req.DateTime,
		Value:       req.Value,
		Status:      req.Status,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toEventDTO(e), "event updated successfully")
}

// Delete DELETE /api/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "event deleted successfully")
}
