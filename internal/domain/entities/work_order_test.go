package entities

import "testing"

func TestWorkOrderStatus_Next(t *testing.T) {
	s := WorkOrderStatusPendiente
	var seen []WorkOrderStatus
	for {
		seen = append(seen, s)
		next, ok := s.Next()
		if !ok {
			break
		}
		s = next
	}

	want := WorkOrderStatuses()
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
	if !s.IsTerminal() {
		t.Fatalf("expected %s to be terminal", s)
	}

	if _, ok := WorkOrderStatus("cancelado").Next(); ok {
		t.Fatalf("unknown status must not advance")
	}
}
