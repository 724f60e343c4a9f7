package services

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/contact-form/internal/logger"
	"github.com/sbilibin2017/contact-form/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// RecentLimit caps the listing.
const RecentLimit = 100

var (
	ErrNameAndEmailRequired = errors.New("name and email required")
)

// UserWriter inserts submissions.
type UserWriter interface {
	Save(ctx context.Context, name, email string, message *string) (int64, error)
}

// UserReader reads submissions back.
type UserReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.UserDB, error)
}

type submission struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

// UserService validates and stores contact-form submissions.
type UserService struct {
	writer   UserWriter
	reader   UserReader
	validate *validator.Validate
}

// NewUserService creates a new UserService instance.
func NewUserService(writer UserWriter, reader UserReader) *UserService {
	return &UserService{
		writer:   writer,
		reader:   reader,
		validate: validator.New(),
	}
}

// Submit trims name and email, rejects blanks and stores one row.
// An empty message is stored as NULL.
func (svc *UserService) Submit(ctx context.Context, name, email, message string) (int64, error) {
	s := submission{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	if err := svc.validate.StructCtx(ctx, s); err != nil {
		logger.Log.Warnw("rejected submission", "err", err)
		return 0, ErrNameAndEmailRequired
	}

	var msg *string
	if message != "" {
		msg = &message
	}

	id, err := svc.writer.Save(ctx, s.Name, s.Email, msg)
	if err != nil {
		logger.Log.Errorw("failed to save submission", "err", err)
		return 0, err
	}

	return id, nil
}

// ListRecent returns up to RecentLimit submissions, newest first.
func (svc *UserService) ListRecent(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.ListRecent(ctx, RecentLimit)
	if err != nil {
		logger.Log.Errorw("failed to list submissions", "err", err)
		return nil, err
	}
	return users, nil
}
