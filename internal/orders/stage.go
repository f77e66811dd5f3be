package orders

import (
	"encoding/json"
	"slices"
)

// Stage is a record's position in the approval lifecycle. Progression is
// monotonic; closed records never reopen.
type Stage string

// Lifecycle stages.
const (
	StageCreated         Stage = "created"
	StageAwaitingVendor  Stage = "awaiting_vendor"
	StageVendorResponded Stage = "vendor_responded"
	StageClosedApproved  Stage = "closed_approved"
	StageClosedRejected  Stage = "closed_rejected"
)

var stages = []Stage{
	StageCreated,
	StageAwaitingVendor,
	StageVendorResponded,
	StageClosedApproved,
	StageClosedRejected,
}

// transitions enumerates every legal stage advance. A vendor reply may
// reconcile against a record the manager never dispatched (the fallback
// match), so vendor_responded is reachable from created as well as
// awaiting_vendor.
var transitions = map[Stage][]Stage{
	StageCreated:         {StageAwaitingVendor, StageVendorResponded},
	StageAwaitingVendor:  {StageVendorResponded},
	StageVendorResponded: {StageClosedApproved, StageClosedRejected},
}

// Stages returns the list of valid lifecycle stages.
func Stages() []Stage {
	return stages
}

// Closed reports whether the stage is terminal.
func (s Stage) Closed() bool {
	return s == StageClosedApproved || s == StageClosedRejected
}

// CanAdvance reports whether a record may move from this stage to the
// target stage.
func (s Stage) CanAdvance(to Stage) bool {
	return slices.Contains(transitions[s], to)
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Stage(raw)
	if !slices.Contains(stages, v) {
		return ErrInvalidStage
	}
	*s = v
	return nil
}

// ParseStage validates a string as a known lifecycle stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}

// Decision is the manager's closing verdict on a vendor submission.
type Decision string

// Manager decisions.
const (
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

// ParseDecision validates a string as a known manager decision.
// Returns ErrInvalidDecision if the value is not recognized.
func ParseDecision(s string) (Decision, error) {
	v := Decision(s)
	if v != DecisionApproved && v != DecisionRejected {
		return "", ErrInvalidDecision
	}
	return v, nil
}

// StageFor returns the closed stage a decision produces.
func (d Decision) StageFor() Stage {
	if d == DecisionApproved {
		return StageClosedApproved
	}
	return StageClosedRejected
}
