package compliance

import (
	"context"
	"database/sql"
	"encoding/json"

	"go-absensi/internal/events"
	"go-absensi/internal/messaging/kafka"
	"go-absensi/internal/shared/contextutil"

	"github.com/google/uuid"
)

// Sink menerima event eskalasi. Pengiriman dan retry adalah urusan sink,
// bukan engine: engine hanya mencatat fakta lalu lanjut.
type Sink interface {
	Emit(ctx context.Context, tx *sql.Tx, event events.EscalationIssuedEvent) error
}

// OutboxSink menulis eskalasi ke transactional outbox di transaksi yang
// sama dengan punch pemicunya; worker kafka yang mengantarkannya.
type OutboxSink struct {
	outbox kafka.OutboxRepository
}

func NewOutboxSink(outbox kafka.OutboxRepository) *OutboxSink {
	return &OutboxSink{outbox: outbox}
}

func (s *OutboxSink) Emit(ctx context.Context, tx *sql.Tx, event events.EscalationIssuedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	repo := s.outbox
	if tx != nil {
		repo = repo.WithTx(tx)
	}

	return repo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   event.EmployeeID,
		EventType:     "escalation.issued",
		Topic:         events.EscalationIssuedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
