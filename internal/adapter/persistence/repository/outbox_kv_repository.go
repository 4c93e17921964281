package repository

import (
	"context"
	"math"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/infrastructure/kvstore"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

const (
	outboxKeyPrefix = "outbox:"
	outboxDueKey    = "outbox:due"
	outboxDeadKey   = "outbox:dead"
)

// OutboxKVRepository keeps intents as hashes plus a due-time sorted set.
// Enqueue writes the hash before the set entry, so a crash in between leaves
// an orphan hash that is never dispatched rather than a due id with no body.
type OutboxKVRepository struct {
	store kvstore.Store
}

var _ interfaces.IOutboxRepository = (*OutboxKVRepository)(nil)

func NewOutboxKVRepository(store kvstore.Store) *OutboxKVRepository {
	return &OutboxKVRepository{store: store}
}

func (r *OutboxKVRepository) Enqueue(ctx context.Context, intent entities.OutboxIntent) error {
	if intent.ID == "" {
		return errors.New("outbox intent without id")
	}
	return r.Reschedule(ctx, intent)
}

func (r *OutboxKVRepository) Due(ctx context.Context, now time.Time) ([]string, error) {
	return r.store.ZRangeByScore(ctx, outboxDueKey, math.Inf(-1), float64(now.Unix()))
}

func (r *OutboxKVRepository) Get(ctx context.Context, id string) (entities.OutboxIntent, error) {
	fields, err := r.store.HGetAll(ctx, outboxKeyPrefix+id)
	if err != nil {
		return entities.OutboxIntent{}, err
	}
	if len(fields) == 0 {
		return entities.OutboxIntent{}, nil
	}
	var intent entities.OutboxIntent
	if err := decodeHash(fields, &intent); err != nil {
		return entities.OutboxIntent{}, errors.Wrapf(err, "outbox intent %s", id)
	}
	return intent, nil
}

func (r *OutboxKVRepository) Reschedule(ctx context.Context, intent entities.OutboxIntent) error {
	if err := r.write(ctx, intent); err != nil {
		return err
	}
	return r.store.ZAdd(ctx, outboxDueKey, float64(intent.NextAttemptAt.Unix()), intent.ID)
}

func (r *OutboxKVRepository) Complete(ctx context.Context, id string) error {
	if err := r.store.ZRem(ctx, outboxDueKey, id); err != nil {
		return err
	}
	return r.store.Del(ctx, outboxKeyPrefix+id)
}

// DeadLetter keeps the intent body for inspection and stops scheduling it.
func (r *OutboxKVRepository) DeadLetter(ctx context.Context, intent entities.OutboxIntent) error {
	if err := r.write(ctx, intent); err != nil {
		return err
	}
	if err := r.store.ZRem(ctx, outboxDueKey, intent.ID); err != nil {
		return err
	}
	return r.store.LPush(ctx, outboxDeadKey, intent.ID)
}

func (r *OutboxKVRepository) ListDead(ctx context.Context) ([]string, error) {
	return r.store.LRange(ctx, outboxDeadKey, 0, -1)
}

func (r *OutboxKVRepository) write(ctx context.Context, intent entities.OutboxIntent) error {
	fields, err := encodeHash(intent)
	if err != nil {
		return err
	}
	return r.store.HSet(ctx, outboxKeyPrefix+intent.ID, fields)
}
