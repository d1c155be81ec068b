package notify

import (
	"context"
	"log"
	"time"
)

type Dispatcher struct {
	publisher Publisher
	queue     chan Event
}

func NewDispatcher(publisher Publisher) *Dispatcher {
	d := &Dispatcher{
		publisher: publisher,
		queue:     make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := d.publisher.Publish(ctx, ev); err != nil {
			log.Println("notify error:", err)
		}
		cancel()
	}
}

// Dispatch nunca bloqueia a requisição: fila cheia descarta o evento.
// O feed é melhor esforço; perder evento não afeta correção.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}
