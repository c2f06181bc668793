package compliance

import (
	"context"
	"database/sql"
	"time"

	"go-absensi/internal/attendance"
	"go-absensi/internal/events"

	"go.uber.org/zap"
)

// Accumulator mengevaluasi semua policy eskalasi untuk satu karyawan.
// Implementasi attendance.Evaluator: dipanggil di dalam transaksi check-in.
type Accumulator struct {
	repo     attendance.Repository
	sink     Sink
	policies []Policy
	logger   *zap.Logger
}

func NewAccumulator(repo attendance.Repository, sink Sink, policies ...Policy) *Accumulator {
	if len(policies) == 0 {
		policies = []Policy{MinutePolicy{}, CountPolicy{}}
	}
	return &Accumulator{
		repo:     repo,
		sink:     sink,
		policies: policies,
		logger:   zap.L().Named("compliance.accumulator"),
	}
}

// EvaluateCheckIn men-scan ulang jendela tiap policy dari record tersimpan.
// Record pemicu belum tentu terlihat oleh scan (masih dalam transaksi),
// jadi kontribusinya digabungkan manual. Tidak ada ledger eskalasi:
// kondisi yang sama bisa terbit berulang antar evaluasi.
func (a *Accumulator) EvaluateCheckIn(ctx context.Context, tx *sql.Tx, rec *attendance.Attendance) error {
	repo := a.repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}

	at := rec.AttendanceDate
	if rec.CheckIn != nil {
		at = *rec.CheckIn
	}
	employeeID := rec.EmployeeID.String()

	for _, p := range a.policies {
		start, end := p.Window(at)
		records, err := repo.FindByEmployeeInRange(ctx, employeeID, start, end)
		if err != nil {
			return err
		}
		records = mergeTrigger(records, rec)

		esc := p.Evaluate(records, at)
		if esc == nil {
			continue
		}

		event := events.EscalationIssuedEvent{
			EventType:    "escalation.issued",
			EmployeeID:   employeeID,
			Kind:         esc.Kind,
			Policy:       esc.Policy,
			TriggerValue: esc.TriggerValue,
			Period:       esc.Period,
			OccurredAt:   time.Now().UTC(),
		}
		if err := a.sink.Emit(ctx, tx, event); err != nil {
			return err
		}

		a.logger.Info("escalation issued",
			zap.String("employee_id", employeeID),
			zap.String("kind", esc.Kind),
			zap.String("policy", esc.Policy),
			zap.Int("trigger_value", esc.TriggerValue),
			zap.String("period", esc.Period),
		)
	}

	return nil
}

func mergeTrigger(records []attendance.Attendance, rec *attendance.Attendance) []attendance.Attendance {
	if rec == nil {
		return records
	}
	for _, r := range records {
		if r.ID == rec.ID {
			return records
		}
	}
	return append(records, *rec)
}
