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
	visitorKeyPrefix = "visitor:"
	visitorsSeenKey  = "visitors:seen"
)

// VisitorKVRepository stores sessions under visitor:<id> with a TTL and keeps
// visitors:seen scored by last-seen epoch seconds.
type VisitorKVRepository struct {
	store kvstore.Store
}

var _ interfaces.IVisitorRepository = (*VisitorKVRepository)(nil)

func NewVisitorKVRepository(store kvstore.Store) *VisitorKVRepository {
	return &VisitorKVRepository{store: store}
}

func (r *VisitorKVRepository) Get(ctx context.Context, id string) (entities.VisitorSession, error) {
	fields, err := r.store.HGetAll(ctx, visitorKeyPrefix+id)
	if err != nil {
		return entities.VisitorSession{}, err
	}
	if len(fields) == 0 {
		return entities.VisitorSession{}, nil
	}
	var s entities.VisitorSession
	if err := decodeHash(fields, &s); err != nil {
		return entities.VisitorSession{}, errors.Wrapf(err, "visitor %s", id)
	}
	return s, nil
}

func (r *VisitorKVRepository) Save(ctx context.Context, s entities.VisitorSession, ttl time.Duration) error {
	key := visitorKeyPrefix + s.ID
	fields, err := encodeHash(s)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return err
	}
	if err := r.store.Expire(ctx, key, ttl); err != nil {
		return err
	}
	return r.store.ZAdd(ctx, visitorsSeenKey, float64(s.LastSeen.Unix()), s.ID)
}

func (r *VisitorKVRepository) CountSeen(ctx context.Context) (int64, error) {
	return r.store.ZCard(ctx, visitorsSeenKey)
}

// SeenBetween returns ids last seen in [from, to]. A zero from means no
// lower bound.
func (r *VisitorKVRepository) SeenBetween(ctx context.Context, from, to time.Time) ([]string, error) {
	min := math.Inf(-1)
	if !from.IsZero() {
		min = float64(from.Unix())
	}
	return r.store.ZRangeByScore(ctx, visitorsSeenKey, min, float64(to.Unix()))
}

func (r *VisitorKVRepository) Forget(ctx context.Context, ids ...string) error {
	return r.store.ZRem(ctx, visitorsSeenKey, ids...)
}
