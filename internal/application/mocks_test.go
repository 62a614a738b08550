package application

import (
	"fmt"
	"sort"
	"time"

	"github.com/planora/planora-api/internal/domain/entity"
	"github.com/planora/planora-api/internal/domain/repository"
)

// In-memory repositories for service tests.

type memUserRepo struct {
	users  map[string]*entity.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(u *entity.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	m.nextID++
	u.ID = fmt.Sprintf("user-%d", m.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) GetByEmailAndBirthDate(email string, birthDate time.Time) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email && u.BirthDate.Equal(birthDate) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) UpdatePassword(id string, passwordHash string) error {
	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

func (m *memUserRepo) Delete(id string) error {
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

var _ repository.UserRepository = (*memUserRepo)(nil)

type memEventRepo struct {
	events map[string]*entity.Event
	nextID int
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: map[string]*entity.Event{}}
}

func (m *memEventRepo) Create(e *entity.Event) error {
	m.nextID++
	e.ID = fmt.Sprintf("event-%d", m.nextID)
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *memEventRepo) GetByID(id string) (*entity.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memEventRepo) ListByUser(userID string) ([]*entity.Event, error) {
	out := make([]*entity.Event, 0)
	for _, e := range m.events {
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (m *memEventRepo) Update(e *entity.Event) error {
	if _, ok := m.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	e.UpdatedAt = time.Now()
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *memEventRepo) Delete(id string) error {
	if _, ok := m.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *memEventRepo) DeleteByUser(userID string) error {
	for id, e := range m.events {
		if e.UserID == userID {
			delete(m.events, id)
		}
	}
	return nil
}

var _ repository.EventRepository = (*memEventRepo)(nil)
