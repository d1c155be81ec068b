package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) snapshot() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}

func TestDispatcher_DeliversToPublisher(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewDispatcher(pub)

	ev := Event{AppointmentID: uuid.New(), BarberID: uuid.New(), Action: "created"}
	d.Dispatch(ev)

	deadline := time.After(2 * time.Second)
	for {
		got := pub.snapshot()
		if len(got) == 1 {
			if got[0] != ev {
				t.Fatalf("wrong event: %+v", got[0])
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("event never published")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_NilReceiverIsSafe(t *testing.T) {
	var d *Dispatcher
	// usecases rodam sem feed configurado; Dispatch vira no-op
	d.Dispatch(Event{Action: "created"})
}

func TestDispatcher_NeverBlocksCaller(t *testing.T) {
	// publisher preso segura o worker; a fila enche e descarta
	blocked := make(chan struct{})
	d := NewDispatcher(publisherFunc(func(ctx context.Context, _ Event) error {
		<-blocked
		return nil
	}))
	defer close(blocked)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			d.Dispatch(Event{Action: "created"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked the caller")
	}
}

type publisherFunc func(ctx context.Context, ev Event) error

func (f publisherFunc) Publish(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}
