package events

import (
	"testing"
	"time"
)

func TestNewRecordEvent(t *testing.T) {
	ev := NewRecordEvent(KindExpense, ActionCreated, "rec-1", "user-1")

	if ev.Kind != KindExpense || ev.Action != ActionCreated {
		t.Fatalf("got kind=%q action=%q", ev.Kind, ev.Action)
	}
	if ev.RecordID != "rec-1" || ev.UserID != "user-1" {
		t.Fatalf("got record_id=%q user_id=%q", ev.RecordID, ev.UserID)
	}
	if ev.Timestamp.IsZero() {
		t.Fatal("timestamp should not be zero")
	}
	if time.Since(ev.Timestamp) > time.Second {
		t.Fatal("timestamp should be recent")
	}
}

func TestRecordEventJSON(t *testing.T) {
	ev := &RecordEvent{
		Kind:      KindBudget,
		Action:    ActionDeleted,
		RecordID:  "rec-9",
		UserID:    "user-2",
		Timestamp: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := ev.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := RecordEventFromJSON(data)
	if err != nil {
		t.Fatalf("RecordEventFromJSON() error = %v", err)
	}

	if parsed.Kind != ev.Kind || parsed.Action != ev.Action {
		t.Fatalf("parsed kind=%q action=%q", parsed.Kind, parsed.Action)
	}
	if parsed.RecordID != ev.RecordID || parsed.UserID != ev.UserID {
		t.Fatalf("parsed record_id=%q user_id=%q", parsed.RecordID, parsed.UserID)
	}
	if !parsed.Timestamp.Equal(ev.Timestamp) {
		t.Fatalf("parsed timestamp = %v, want %v", parsed.Timestamp, ev.Timestamp)
	}
}

func TestRecordEventInvalidJSON(t *testing.T) {
	if _, err := RecordEventFromJSON([]byte(`{"kind": 42}`)); err == nil {
		t.Fatal("RecordEventFromJSON() should fail with invalid JSON")
	}
}
