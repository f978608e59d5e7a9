package trace

import (
	"testing"
)

func TestLineTrace_Record_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for order tracing
	lt := NewLineTrace(Config{Level: LevelOrders})

	// WHEN a record is recorded
	lt.Record(OrderRecord{
		OrderID: 1,
		Clock:   0.5,
		Stage:   "Prep",
		Event:   EventQueued,
	})

	// THEN the trace contains one record with correct data
	if len(lt.Orders) != 1 {
		t.Fatalf("expected 1 record, got %d", len(lt.Orders))
	}
	if lt.Orders[0].OrderID != 1 {
		t.Errorf("expected order ID 1, got %d", lt.Orders[0].OrderID)
	}
	if lt.Orders[0].Event != EventQueued {
		t.Errorf("expected queued event, got %s", lt.Orders[0].Event)
	}
}

func TestLineTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	lt := NewLineTrace(Config{Level: LevelOrders})

	// WHEN multiple records are added
	lt.Record(OrderRecord{OrderID: 1, Clock: 0.5, Event: EventArrived})
	lt.Record(OrderRecord{OrderID: 1, Clock: 0.5, Stage: "Prep", Event: EventStarted})
	lt.Record(OrderRecord{OrderID: 2, Clock: 0.7, Event: EventArrived})

	// THEN order is preserved
	if len(lt.Orders) != 3 {
		t.Fatalf("expected 3 records, got %d", len(lt.Orders))
	}
	if lt.Orders[0].OrderID != 1 || lt.Orders[2].OrderID != 2 {
		t.Error("record order not preserved")
	}
	if lt.Orders[1].Stage != "Prep" {
		t.Errorf("expected Prep stage on second record, got %q", lt.Orders[1].Stage)
	}
}

func TestLineTrace_DisabledLevel_RecordsNothing(t *testing.T) {
	// GIVEN a trace configured with tracing off
	lt := NewLineTrace(Config{Level: LevelNone})

	// WHEN a record is recorded
	lt.Record(OrderRecord{OrderID: 1, Clock: 0.5, Event: EventArrived})

	// THEN nothing is collected
	if len(lt.Orders) != 0 {
		t.Fatalf("expected 0 records, got %d", len(lt.Orders))
	}
	if lt.Enabled() {
		t.Error("expected disabled trace")
	}
}

func TestLineTrace_NilTrace_IsSafe(t *testing.T) {
	// GIVEN no trace at all
	var lt *LineTrace

	// WHEN queried and recorded into
	lt.Record(OrderRecord{OrderID: 1, Event: EventArrived})

	// THEN nothing panics and the trace stays disabled
	if lt.Enabled() {
		t.Error("nil trace must report disabled")
	}
}

func TestIsValidLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"orders", true},
		{"", true}, // empty defaults to none
		{"detailed", false},
		{"foobar", false},
		{"ORDERS", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
