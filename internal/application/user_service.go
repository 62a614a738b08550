package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/planora/planora-api/internal/domain/entity"
	repo "github.com/planora/planora-api/internal/domain/repository"
	"github.com/planora/planora-api/pkg/helpers"
	"github.com/planora/planora-api/pkg/mailer"
)

// UserService implements the identity flows: registration, login,
// identity verification, password reset, and account deletion with
// cascading event removal.
type UserService struct {
	Repo        repo.UserRepository
	Events      repo.EventRepository
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
	Logger      *logrus.Logger
}

func NewUserService(userRepo repo.UserRepository, eventRepo repo.EventRepository, pub *helpers.RabbitPublisher, mailEnabled bool, logger *logrus.Logger) *UserService {
	return &UserService{
		Repo:        userRepo,
		Events:      eventRepo,
		Pub:         pub,
		MailEnabled: mailEnabled,
		Logger:      logger,
	}
}

type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	BirthDate string // "D/M/YYYY"
}

type LoginResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register creates a new account. The email must not already exist;
// the password is stored as a bcrypt hash only.
func (s *UserService) Register(ctx context.Context, in RegisterInput) error {
	birthDate, err := ParseBirthDate(in.BirthDate)
	if err != nil {
		return err
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return err
	}
	u := &entity.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		BirthDate: birthDate,
	}
	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrEmailTaken
		}
		return err
	}

	s.enqueueMail(ctx, u.Email, "Welcome to Planora",
		fmt.Sprintf("Hi %s, your account was created successfully.", u.Name))
	return nil
}

// Login checks the credentials and returns the public identity payload.
// Unknown email and wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &LoginResponse{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

// VerifyIdentity matches an email against an exact birth date and
// returns the matching user's id. It is the precondition step for a
// password reset and deliberately does not authenticate by credential.
func (s *UserService) VerifyIdentity(ctx context.Context, email, birthDate string) (string, error) {
	parsed, err := ParseBirthDate(birthDate)
	if err != nil {
		return "", err
	}
	u, err := s.Repo.GetByEmailAndBirthDate(email, parsed)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return u.ID, nil
}

// ResetPassword overwrites the stored hash for the given user.
func (s *UserService) ResetPassword(ctx context.Context, userID, newPassword string) error {
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(userID, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if u, err := s.Repo.GetByID(userID); err == nil {
		s.enqueueMail(ctx, u.Email, "Your password was changed",
			fmt.Sprintf("Hi %s, the password for your account was just reset.", u.Name))
	}
	return nil
}

// DeleteAccount verifies the password, then deletes the user's events
// and the user record. The two deletions are sequential, not atomic: a
// crash in between leaves orphaned events behind.
func (s *UserService) DeleteAccount(ctx context.Context, userID, password string) error {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return ErrInvalidCredentials
	}

	if err := s.Events.DeleteByUser(userID); err != nil {
		return err
	}
	if err := s.Repo.Delete(userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.enqueueMail(ctx, u.Email, "Your account was deleted",
		fmt.Sprintf("Hi %s, your account and all of its events were deleted.", u.Name))
	return nil
}

// enqueueMail publishes a notification job. Best-effort: the identity
// flows never fail because the queue is down or disabled.
func (s *UserService) enqueueMail(ctx context.Context, to, subject, text string) {
	if !s.MailEnabled || s.Pub == nil {
		return
	}
	job := mailer.EmailJob{To: to, Subject: subject, Text: text}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("to", to).Warn("email enqueue failed")
	}
}
