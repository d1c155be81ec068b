package notify

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Feed de mudanças do conjunto de agendamentos. Melhor esforço:
// a UI usa para invalidar horários exibidos, mas a verificação
// autoritativa é sempre a constraint no commit.

const Channel = "appointments.changes"

type Event struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	BarberID      uuid.UUID `json:"barber_id"`
	Action        string    `json:"action"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// ------------------------------
// Redis
// ------------------------------

type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, Channel, payload).Err()
}

// ------------------------------
// Noop (REDIS_URL ausente)
// ------------------------------

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error {
	return nil
}
