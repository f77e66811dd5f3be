package orders_test

import (
	"errors"
	"testing"

	"github.com/shipdesk/shipdesk/internal/orders"
)

func TestStageCanAdvance(t *testing.T) {
	tests := []struct {
		name     string
		from     orders.Stage
		to       orders.Stage
		expected bool
	}{
		{"created to awaiting vendor", orders.StageCreated, orders.StageAwaitingVendor, true},
		{"created to vendor responded via fallback match", orders.StageCreated, orders.StageVendorResponded, true},
		{"awaiting vendor to vendor responded", orders.StageAwaitingVendor, orders.StageVendorResponded, true},
		{"vendor responded to approved", orders.StageVendorResponded, orders.StageClosedApproved, true},
		{"vendor responded to rejected", orders.StageVendorResponded, orders.StageClosedRejected, true},
		{"created cannot close", orders.StageCreated, orders.StageClosedApproved, false},
		{"awaiting vendor cannot close", orders.StageAwaitingVendor, orders.StageClosedRejected, false},
		{"no regression from vendor responded", orders.StageVendorResponded, orders.StageAwaitingVendor, false},
		{"closed approved is terminal", orders.StageClosedApproved, orders.StageVendorResponded, false},
		{"closed rejected is terminal", orders.StageClosedRejected, orders.StageCreated, false},
		{"closed cannot flip decision", orders.StageClosedApproved, orders.StageClosedRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanAdvance(tt.to); got != tt.expected {
				t.Errorf("%s.CanAdvance(%s) = %v, expected %v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestStageClosed(t *testing.T) {
	for _, stage := range orders.Stages() {
		closed := stage == orders.StageClosedApproved || stage == orders.StageClosedRejected
		if got := stage.Closed(); got != closed {
			t.Errorf("%s.Closed() = %v, expected %v", stage, got, closed)
		}
	}
}

func TestParseStage(t *testing.T) {
	for _, stage := range orders.Stages() {
		parsed, err := orders.ParseStage(string(stage))
		if err != nil {
			t.Errorf("ParseStage(%s) error: %v", stage, err)
		}
		if parsed != stage {
			t.Errorf("ParseStage(%s) = %s", stage, parsed)
		}
	}

	if _, err := orders.ParseStage("shipped"); !errors.Is(err, orders.ErrInvalidStage) {
		t.Errorf("expected ErrInvalidStage, got %v", err)
	}
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		input    string
		expected orders.Decision
		err      error
	}{
		{"Approved", orders.DecisionApproved, nil},
		{"Rejected", orders.DecisionRejected, nil},
		{"approved", "", orders.ErrInvalidDecision},
		{"", "", orders.ErrInvalidDecision},
	}

	for _, tt := range tests {
		decision, err := orders.ParseDecision(tt.input)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("ParseDecision(%q) error = %v, expected %v", tt.input, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDecision(%q) error: %v", tt.input, err)
		}
		if decision != tt.expected {
			t.Errorf("ParseDecision(%q) = %s, expected %s", tt.input, decision, tt.expected)
		}
	}
}

func TestDecisionStageFor(t *testing.T) {
	if got := orders.DecisionApproved.StageFor(); got != orders.StageClosedApproved {
		t.Errorf("Approved.StageFor() = %s", got)
	}
	if got := orders.DecisionRejected.StageFor(); got != orders.StageClosedRejected {
		t.Errorf("Rejected.StageFor() = %s", got)
	}
}
