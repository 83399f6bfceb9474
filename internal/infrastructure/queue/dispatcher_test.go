package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

type stubAuditService struct {
	events chan ports.AuditEventInput
	err    error
}

func (s *stubAuditService) Process(_ context.Context, event ports.AuditEventInput) error {
	s.events <- event
	return s.err
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stub := &stubAuditService{events: make(chan ports.AuditEventInput, 8)}
	d := NewDispatcher(2, stub, zerolog.Nop())
	d.Start(ctx)

	in := ports.AuditEventInput{
		ActorID:    42,
		Action:     domain.AuditUserRegistered,
		Entity:     "user",
		EntityID:   42,
		OccurredAt: time.Now(),
	}
	d.Enqueue(in)

	select {
	case got := <-stub.events:
		if got.ActorID != 42 || got.Action != domain.AuditUserRegistered {
			t.Fatalf("unexpected event: %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event was not processed")
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, &stubAuditService{events: make(chan ports.AuditEventInput, 1)}, zerolog.Nop())

	for _, actorID := range []int64{0, 1, 7, 42, -3} {
		first := d.shardIndex(actorID)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(actorID); got != first {
				t.Fatalf("actor %d: shard changed from %d to %d", actorID, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Fatalf("actor %d: shard %d out of range", actorID, first)
		}
	}
}

func TestDispatcher_SameActorSameWorker(t *testing.T) {
	d := NewDispatcher(3, &stubAuditService{events: make(chan ports.AuditEventInput, 1)}, zerolog.Nop())

	a, b := d.shardIndex(10), d.shardIndex(10)
	if a != b {
		t.Fatalf("same actor mapped to different workers: %d vs %d", a, b)
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &stubAuditService{events: make(chan ports.AuditEventInput, 1)}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
