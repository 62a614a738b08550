package application

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateEvent_Defaults(t *testing.T) {
	repo := newMemEventRepo()
	svc := NewEventService(repo, nil, "", nil)

	e, err := svc.Create(context.Background(), CreateEventInput{
		UserID:    "user-1",
		EventName: "Birthday Party",
		Venue:     "Sunset Hall",
		DateTime:  time.Date(2026, time.September, 12, 18, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if e.ID == "" {
		t.Error("expected a generated id")
	}
	if e.Value != 0 {
		t.Errorf("value = %v, want 0", e.Value)
	}
	if e.Status != "Confirmed" {
		t.Errorf("status = %q, want %q", e.Status, "Confirmed")
	}
	if e.Description != "" {
		t.Errorf("description = %q, want empty", e.Description)
	}
}

func TestCreateEvent_ExplicitFields(t *testing.T) {
	repo := newMemEventRepo()
	svc := NewEventService(repo, nil, "", nil)

	value := 250.5
	status := "Pending"
	desc := "catering included"
	e, err := svc.Create(context.Background(), CreateEventInput{
		UserID:      "user-1",
		EventName:   "Dinner",
		Venue:       "Rooftop",
		DateTime:    time.Now(),
		Value:       &value,
		Status:      &status,
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if e.Value != 250.5 || e.Status != "Pending" || e.Description != "catering included" {
		t.Errorf("explicit fields not applied: %+v", e)
	}
}

func TestListEvents_OrderedByDateTime(t *testing.T) {
	repo := newMemEventRepo()
	svc := NewEventService(repo, nil, "", nil)
	ctx := context.Background()

	t1 := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.AddDate(0, 1, 0)
	t3 := t1.AddDate(0, 2, 0)
	// Inserted out of order on purpose.
	for _, dt := range []time.Time{t2, t3, t1} {
		if _, err := svc.Create(ctx, CreateEventInput{UserID: "user-1", EventName: "E", Venue: "V", DateTime: dt}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	events, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, want := range []time.Time{t1, t2, t3} {
		if !events[i].DateTime.Equal(want) {
			t.Errorf("events[%d].DateTime = %v, want %v", i, events[i].DateTime, want)
		}
	}
}

func TestListEvents_EmptyForUnknownUser(t *testing.T) {
	svc := NewEventService(newMemEventRepo(), nil, "", nil)
	events, err := svc.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestUpdateEvent_Partial(t *testing.T) {
	repo := newMemEventRepo()
	svc := NewEventService(repo, nil, "", nil)
	ctx := context.Background()

	e, err := svc.Create(ctx, CreateEventInput{UserID: "user-1", EventName: "Old Name", Venue: "Old Venue", DateTime: time.Now()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newName := "New Name"
	newOwner := "user-2"
	updated, err := svc.Update(ctx, e.ID, UpdateEventInput{EventName: &newName, UserID: &newOwner})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.EventName != "New Name" {
		t.Errorf("eventName = %q, want %q", updated.EventName, "New Name")
	}
	if updated.Venue != "Old Venue" {
		t.Errorf("venue changed unexpectedly: %q", updated.Venue)
	}
	// Owner overwrite is accepted verbatim.
	if updated.UserID != "user-2" {
		t.Errorf("userId = %q, want %q", updated.UserID, "user-2")
	}
}

func TestUpdateEvent_NotFound(t *testing.T) {
	repo := newMemEventRepo()
	svc := NewEventService(repo, nil, "", nil)
	ctx := context.Background()

	other, _ := svc.Create(ctx, CreateEventInput{UserID: "user-1", EventName: "Keep", Venue: "V", DateTime: time.Now()})

	name := "X"
	if _, err := svc.Update(ctx, "missing", UpdateEventInput{EventName: &name}); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("error = %v, want ErrEventNotFound", err)
	}
	kept, err := repo.GetByID(other.ID)
	if err != nil || kept.EventName != "Keep" {
		t.Error("unrelated record mutated by failed update")
	}
}

func TestDeleteEvent(t *testing.T) {
	repo := newMemEventRepo()
	svc := NewEventService(repo, nil, "", nil)
	ctx := context.Background()

	e, _ := svc.Create(ctx, CreateEventInput{UserID: "user-1", EventName: "E", Venue: "V", DateTime: time.Now()})

	if err := svc.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, e.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("second delete error = %v, want ErrEventNotFound", err)
	}
	if err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("unknown id error = %v, want ErrEventNotFound", err)
	}
}

func TestSearch_WithoutElasticsearch(t *testing.T) {
	svc := NewEventService(newMemEventRepo(), nil, "", nil)
	hits, err := svc.Search(context.Background(), "user-1", "party", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("got %d hits without ES configured, want 0", len(hits))
	}
}
