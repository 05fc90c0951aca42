package storage

import (
	"context"

	"github.com/slok/fitrack/internal/model"
)

//go:generate mockery --case underscore --output storagemock --outpkg storagemock --structname MockRepository --filename mocks.go --name Repository

// Repository is the interface for the local session persistence. There is
// at most one session stored at a time.
type Repository interface {
	// SaveSession stores the session replacing any previous one.
	SaveSession(ctx context.Context, s model.Session) error
	// GetSession returns model.ErrNotFound when nobody is logged in.
	GetSession(ctx context.Context) (*model.Session, error)
	// DeleteSession is idempotent.
	DeleteSession(ctx context.Context) error
}
