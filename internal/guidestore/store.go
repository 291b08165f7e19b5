package guidestore

import (
	"context"

	"github.com/google/uuid"

	"github.com/studivo/studivo-backend/internal/types"
)

// Store holds the execution guides keyed by session id. Guides are
// derived data; regenerating a week overwrites what is there.
type Store interface {
	Get(ctx context.Context, sessionID uuid.UUID) (types.ExecutionGuide, bool, error)
	GetAll(ctx context.Context) (map[uuid.UUID]types.ExecutionGuide, error)
	Set(ctx context.Context, guide types.ExecutionGuide) error
	SetMany(ctx context.Context, guides []types.ExecutionGuide) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Close() error
}
