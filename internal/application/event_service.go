package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/planora/planora-api/internal/domain/entity"
	repo "github.com/planora/planora-api/internal/domain/repository"
)

// DefaultEventStatus is applied when a create request omits status.
const DefaultEventStatus = "Confirmed"

// EventService is pass-through persistence for event records: defaults
// are filled here, not in the storage layer, and no field-level
// validation is applied beyond request shape checks.
type EventService struct {
	Repo          repo.EventRepository
	ES            *elasticsearch.Client
	ESEventsIndex string
	Logger        *logrus.Logger
}

func NewEventService(eventRepo repo.EventRepository, es *elasticsearch.Client, esEventsIndex string, logger *logrus.Logger) *EventService {
	return &EventService{
		Repo:          eventRepo,
		ES:            es,
		ESEventsIndex: esEventsIndex,
		Logger:        logger,
	}
}

type CreateEventInput struct {
	UserID      string
	EventName   string
	Venue       string
	DateTime    time.Time
	Value       *float64
	Status      *string
	Description *string
}

// Create persists a new event with defaults for omitted optional
// fields. The owner id is accepted as-is; no existence check.
func (s *EventService) Create(ctx context.Context, in CreateEventInput) (*entity.Event, error) {
	e := &entity.Event{
		UserID:    in.UserID,
		EventName: in.EventName,
		Venue:     in.Venue,
		DateTime:  in.DateTime,
		Status:    DefaultEventStatus,
	}
	if in.Value != nil {
		e.Value = *in.Value
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if err := s.Repo.Create(e); err != nil {
		return nil, err
	}
	s.indexEvent(ctx, e)
	return e, nil
}

// List returns the user's events ordered ascending by date. A user with
// no events gets an empty slice, not an error.
func (s *EventService) List(ctx context.Context, userID string) ([]*entity.Event, error) {
	return s.Repo.ListByUser(userID)
}

type UpdateEventInput struct {
	UserID      *string
	EventName   *string
	Venue       *string
	DateTime    *time.Time
	Value       *float64
	Status      *string
	Description *string
}

// Update overwrites any provided subset of fields verbatim, including
// the owner reference, and returns the updated record.
func (s *EventService) Update(ctx context.Context, id string, in UpdateEventInput) (*entity.Event, error) {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if in.UserID != nil {
		e.UserID = *in.UserID
	}
	if in.EventName != nil {
		e.EventName = *in.EventName
	}
	if in.Venue != nil {
		e.Venue = *in.Venue
	}
	if in.DateTime != nil {
		e.DateTime = *in.DateTime
	}
	if in.Value != nil {
		e.Value = *in.Value
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if err := s.Repo.Update(e); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	s.indexEvent(ctx, e)
	return e, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	s.removeEventIndex(ctx, id)
	return nil
}

// indexEvent pushes the latest event document to Elasticsearch.
// Best-effort: persistence is the source of truth.
func (s *EventService) indexEvent(ctx context.Context, e *entity.Event) {
	if s.ES == nil || s.ESEventsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          e.ID,
		"user_id":     e.UserID,
		"event_name":  e.EventName,
		"venue":       e.Venue,
		"date_time":   e.DateTime.Format(time.RFC3339Nano),
		"value":       e.Value,
		"status":      e.Status,
		"description": e.Description,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESEventsIndex, DocumentID: e.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("event_id", e.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("event_id", e.ID).Warn("es index response error")
	}
}

func (s *EventService) removeEventIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESEventsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESEventsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("event_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over the user's indexed events.
// Returns an empty result when Elasticsearch is not configured.
func (s *EventService) Search(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESEventsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"event_name^2", "venue", "description"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESEventsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
