package events

import "time"

const EscalationIssuedTopic = "hr.compliance.escalation.v1"

const KindSP1 = "SP1"

// EscalationIssuedEvent adalah fakta keluar; engine tidak menyimpan ledger
// eskalasi sendiri, sehingga kondisi yang sama bisa terpancar berulang saat
// jendela dihitung ulang.
type EscalationIssuedEvent struct {
	EventType    string    `json:"event_type"`
	EmployeeID   string    `json:"employee_id"`
	Kind         string    `json:"kind"`
	Policy       string    `json:"policy"`
	TriggerValue int       `json:"trigger_value"`
	Period       string    `json:"period"`
	OccurredAt   time.Time `json:"occurred_at"`
}
