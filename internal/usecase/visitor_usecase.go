package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const DefaultVisitorTTL = 30 * 24 * time.Hour

type VisitInput struct {
	VisitorID string
	Page      string
	Source    string
	Medium    string
	Campaign  string
	Referrer  string
	Device    string
	UserAgent string
}

// IVisitorUseCase records anonymous site visits. Tracking never fails the
// caller: the id is returned even when the write did not land.
type IVisitorUseCase interface {
	Track(ctx context.Context, in VisitInput) string
	Stats(ctx context.Context, window time.Duration) (entities.VisitorStats, error)
}

type VisitorUseCase struct {
	visitors interfaces.IVisitorRepository
	ttl      time.Duration
	now      func() time.Time
}

var _ IVisitorUseCase = (*VisitorUseCase)(nil)

func NewVisitorUseCase(visitors interfaces.IVisitorRepository, ttl time.Duration) *VisitorUseCase {
	if ttl <= 0 {
		ttl = DefaultVisitorTTL
	}
	return &VisitorUseCase{visitors: visitors, ttl: ttl, now: utcNow}
}

func (u *VisitorUseCase) Track(ctx context.Context, in VisitInput) string {
	now := u.now()
	id := strings.TrimSpace(in.VisitorID)

	var session entities.VisitorSession
	if id != "" {
		existing, err := u.visitors.Get(ctx, id)
		if err != nil {
			log.Printf("[visitor][usecase] load failed visitor_id=%s err=%v", id, err)
		}
		session = existing
	} else {
		id = uuid.NewString()
	}

	if session.ID == "" {
		session = entities.VisitorSession{
			ID:          id,
			Source:      in.Source,
			Medium:      in.Medium,
			Campaign:    in.Campaign,
			Referrer:    in.Referrer,
			LandingPage: in.Page,
			Device:      in.Device,
			UserAgent:   in.UserAgent,
			FirstSeen:   now,
		}
	}

	session.PageViews++
	if in.Page != "" {
		session.Pages = append(session.Pages, in.Page)
		if n := len(session.Pages); n > entities.MaxVisitorPages {
			session.Pages = session.Pages[n-entities.MaxVisitorPages:]
		}
	}
	session.LastSeen = now

	if err := u.visitors.Save(ctx, session, u.ttl); err != nil {
		log.Printf("[visitor][usecase] save failed visitor_id=%s err=%v", id, err)
	}
	return id
}

// Stats counts tracked visitors and those seen inside window. Index members
// older than the session TTL are pruned along the way.
func (u *VisitorUseCase) Stats(ctx context.Context, window time.Duration) (entities.VisitorStats, error) {
	now := u.now()

	stale, err := u.visitors.SeenBetween(ctx, time.Time{}, now.Add(-u.ttl))
	if err != nil {
		return entities.VisitorStats{}, err
	}
	if len(stale) > 0 {
		if err := u.visitors.Forget(ctx, stale...); err != nil {
			return entities.VisitorStats{}, err
		}
		log.Printf("[visitor][usecase] pruned count=%d", len(stale))
	}

	tracked, err := u.visitors.CountSeen(ctx)
	if err != nil {
		return entities.VisitorStats{}, err
	}
	active, err := u.visitors.SeenBetween(ctx, now.Add(-window), now)
	if err != nil {
		return entities.VisitorStats{}, err
	}
	return entities.VisitorStats{Tracked: tracked, Active: len(active), Pruned: len(stale)}, nil
}
