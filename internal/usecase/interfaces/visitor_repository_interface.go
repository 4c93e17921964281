package interfaces

import (
	"context"
	"time"

	"towdispatch/internal/domain/entities"
)

type IVisitorRepository interface {
	Get(ctx context.Context, id string) (entities.VisitorSession, error)
	Save(ctx context.Context, s entities.VisitorSession, ttl time.Duration) error
	CountSeen(ctx context.Context) (int64, error)
	SeenBetween(ctx context.Context, from, to time.Time) ([]string, error)
	Forget(ctx context.Context, ids ...string) error
}
