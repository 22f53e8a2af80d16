package events

import (
	"encoding/json"
	"time"
)

const (
	KindIncome      = "income"
	KindExpense     = "expense"
	KindBudget      = "budget"
	KindSavingsGoal = "savings_goal"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// RecordEvent announces a record lifecycle change. It carries only
// identifiers; consumers fetch current state from storage themselves.
type RecordEvent struct {
	Kind      string    `json:"kind"`
	Action    string    `json:"action"`
	RecordID  string    `json:"record_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRecordEvent creates an event stamped with the current time.
func NewRecordEvent(kind, action, recordID, userID string) *RecordEvent {
	return &RecordEvent{
		Kind:      kind,
		Action:    action,
		RecordID:  recordID,
		UserID:    userID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *RecordEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// RecordEventFromJSON creates an event from JSON bytes.
func RecordEventFromJSON(data []byte) (*RecordEvent, error) {
	var ev RecordEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
