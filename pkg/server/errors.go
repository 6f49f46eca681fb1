package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/DominusMortem/foodgram-project-react/pkg/auth"
	"github.com/DominusMortem/foodgram-project-react/pkg/model"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
)

var (
	ErrInvalidInput     = errors.New("bad request")
	ErrConflict         = errors.New("conflict")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("authentication required")
)

func currentUser(ctx context.Context) (*model.User, error) {
	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no user in context", ErrUnauthenticated)
	}

	return user, nil
}

// notFound converts a repository miss into ErrNotFound and passes other errors through.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
	}

	return err
}
