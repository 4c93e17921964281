package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"towdispatch/internal/adapter/persistence/repository"
	"towdispatch/internal/domain/entities"
	"towdispatch/internal/infrastructure/kvstore"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

// testEnv wires the real repositories over an in-memory store.
type testEnv struct {
	store        kvstore.Store
	jobs         *repository.JobKVRepository
	supplierJobs *repository.SupplierJobKVRepository
	outbox       *repository.OutboxKVRepository
	payments     *repository.PaymentKVRepository
	notifier     *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, kvstore.NewMemoryStore())
}

func newTestEnvWithStore(t *testing.T, store kvstore.Store) *testEnv {
	t.Helper()
	return &testEnv{
		store:        store,
		jobs:         repository.NewJobKVRepository(store, 100),
		supplierJobs: repository.NewSupplierJobKVRepository(store),
		outbox:       repository.NewOutboxKVRepository(store),
		payments:     repository.NewPaymentKVRepository(store),
		notifier:     &recordingNotifier{},
	}
}

func (e *testEnv) jobUseCase() *JobUseCase {
	return NewJobUseCase(e.jobs, e.supplierJobs, e.outbox, e.notifier, JobSettings{ScanWindow: 50, PublicBaseURL: "https://tow.example"})
}

func (e *testEnv) mustCreate(t *testing.T, job entities.JobRecord) entities.JobRecord {
	t.Helper()
	created, err := e.jobUseCase().Create(context.Background(), job, "admin")
	if err != nil {
		t.Fatalf("create %s: %v", job.BookingID, err)
	}
	return created
}

func (e *testEnv) mustGetJob(t *testing.T, id string) entities.JobRecord {
	t.Helper()
	job, err := e.jobs.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	if job.BookingID == "" {
		t.Fatalf("job %s not stored", id)
	}
	return job
}

func (e *testEnv) dueIntents(t *testing.T) []entities.OutboxIntent {
	t.Helper()
	ids, err := e.outbox.Due(context.Background(), time.Now().Add(24*time.Hour))
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	out := make([]entities.OutboxIntent, 0, len(ids))
	for _, id := range ids {
		intent, err := e.outbox.Get(context.Background(), id)
		if err != nil {
			t.Fatalf("get intent %s: %v", id, err)
		}
		out = append(out, intent)
	}
	return out
}

type sentMessage struct {
	kind    string
	to      string
	subject string
	body    string
}

// recordingNotifier records sends and fails the first failures calls.
type recordingNotifier struct {
	mu       sync.Mutex
	failures int
	sent     []sentMessage
}

var _ interfaces.INotifier = (*recordingNotifier)(nil)

func (n *recordingNotifier) SendEmail(_ context.Context, to, subject, body string) error {
	return n.record(sentMessage{kind: "email", to: to, subject: subject, body: body})
}

func (n *recordingNotifier) SendSMS(_ context.Context, mobile, body string) error {
	return n.record(sentMessage{kind: "sms", to: mobile, body: body})
}

func (n *recordingNotifier) record(m sentMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failures > 0 {
		n.failures--
		return errors.New("relay unavailable")
	}
	n.sent = append(n.sent, m)
	return nil
}

func (n *recordingNotifier) count(kind string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, m := range n.sent {
		if m.kind == kind {
			c++
		}
	}
	return c
}

// failingStore fails HSet on keys with the given prefix while armed.
type failingStore struct {
	kvstore.Store
	mu     sync.Mutex
	prefix string
	armed  bool
}

func (s *failingStore) arm(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefix, s.armed = prefix, true
}

func (s *failingStore) disarm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armed = false
}

func (s *failingStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	s.mu.Lock()
	fail := s.armed && strings.HasPrefix(key, s.prefix)
	s.mu.Unlock()
	if fail {
		return errors.Newf("simulated crash writing %s", key)
	}
	return s.Store.HSet(ctx, key, fields)
}

// readBarrierStore holds writes to key until readers reads of it have
// happened, forcing concurrent read-modify-write cycles to overlap.
type readBarrierStore struct {
	kvstore.Store
	key      string
	readers  int
	mu       sync.Mutex
	reads    int
	released chan struct{}
}

func newReadBarrierStore(inner kvstore.Store, key string, readers int) *readBarrierStore {
	return &readBarrierStore{Store: inner, key: key, readers: readers, released: make(chan struct{})}
}

func (s *readBarrierStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	fields, err := s.Store.HGetAll(ctx, key)
	if key == s.key {
		s.mu.Lock()
		s.reads++
		if s.reads == s.readers {
			close(s.released)
		}
		s.mu.Unlock()
	}
	return fields, err
}

func (s *readBarrierStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if key == s.key {
		select {
		case <-s.released:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.Store.HSet(ctx, key, fields)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
