package interfaces

import (
	"context"
	"time"

	"towdispatch/internal/domain/entities"
)

// IOutboxRepository stores side-effect intents until a dispatcher carries
// them out.
type IOutboxRepository interface {
	Enqueue(ctx context.Context, intent entities.OutboxIntent) error
	Due(ctx context.Context, now time.Time) ([]string, error)
	Get(ctx context.Context, id string) (entities.OutboxIntent, error)
	Reschedule(ctx context.Context, intent entities.OutboxIntent) error
	Complete(ctx context.Context, id string) error
	DeadLetter(ctx context.Context, intent entities.OutboxIntent) error
	ListDead(ctx context.Context) ([]string, error)
}
