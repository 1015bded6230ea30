package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/nerrad567/gray-logic-sentry/internal/rule"
)

// ConditionResult explains one condition's outcome against the scenario.
type ConditionResult struct {
	// ConditionID is the stable row id of the condition.
	ConditionID string `json:"condition_id"`

	// Matched reports whether the condition held.
	Matched bool `json:"matched"`

	// Reason is a human-readable explanation for display next to the row.
	Reason string `json:"reason"`
}

// Result is the outcome of dry-running a rule against a scenario.
type Result struct {
	// Fires is the overall decision: would the rule fire right now, given
	// exactly the asserted states.
	Fires bool `json:"fires"`

	// Conditions holds one entry per condition row, in document order,
	// including incomplete rows that were excluded from the decision.
	Conditions []ConditionResult `json:"conditions"`

	// FiredActions is the rule's full action list when Fires is true,
	// otherwise empty. The evaluator never executes them.
	FiredActions []rule.ActionRow `json:"fired_actions"`

	// AssumedValidUntil is when the asserted states stop being assumed
	// valid (evaluation time plus the scenario's assume-for-seconds).
	// Presentation only: the fire decision itself is instantaneous.
	AssumedValidUntil time.Time `json:"assumed_valid_until"`

	// Warnings lists problems that did not stop the evaluation, such as
	// a malformed assume-for-seconds value.
	Warnings []string `json:"warnings,omitempty"`
}

// Evaluate decides whether a rule document would fire against a scenario's
// asserted states at the given instant.
//
// Each condition is matched exactly: the entity must be asserted in the
// scenario and its state must equal the expected value post-trim,
// case-sensitive. An entity absent from the scenario never matches, even
// when the expected value is the empty string. Conditions with an empty
// entity id (or an unrecognised kind) are incomplete: they are flagged in
// the per-condition results but excluded from the combine step.
//
// Combining follows the document's mode over the complete conditions:
// "all" requires every one to match, "any" requires at least one. A
// document with no complete conditions never fires under either mode.
func Evaluate(doc *rule.Document, sc Scenario, now time.Time) Result {
	res := Result{FiredActions: []rule.ActionRow{}}

	if dur, err := sc.AssumedDuration(); err == nil {
		res.AssumedValidUntil = now.Add(dur)
	} else {
		res.AssumedValidUntil = now
		res.Warnings = append(res.Warnings, fmt.Sprintf("%v; treating as 0 seconds", err))
	}

	if doc == nil {
		return res
	}

	snap := sc.Snapshot()
	res.Conditions = make([]ConditionResult, 0, len(doc.Conditions))

	complete := 0
	matches := 0
	for _, c := range doc.Conditions {
		cr := evaluateCondition(c, snap)
		res.Conditions = append(res.Conditions, cr.ConditionResult)
		if cr.complete {
			complete++
			if cr.Matched {
				matches++
			}
		}
	}

	// Zero complete conditions never fire: a vacuously true "all" would
	// let a rule with no conditions and some actions fire unconditionally.
	if complete > 0 {
		switch doc.CombineMode {
		case rule.CombineAny:
			res.Fires = matches > 0
		default:
			res.Fires = matches == complete
		}
	}

	if res.Fires {
		res.FiredActions = append(res.FiredActions, doc.Actions...)
	}
	return res
}

// conditionOutcome pairs a result entry with whether the condition counted
// toward the combine step.
type conditionOutcome struct {
	ConditionResult
	complete bool
}

// evaluateCondition matches one condition row against the state snapshot.
func evaluateCondition(c rule.ConditionRow, snap map[string]string) conditionOutcome {
	out := conditionOutcome{ConditionResult: ConditionResult{ConditionID: c.ID}}

	if c.Kind != rule.ConditionEntityState {
		out.Reason = fmt.Sprintf("unsupported condition kind %q", c.Kind)
		return out
	}

	entityID := strings.TrimSpace(c.EntityID)
	if entityID == "" {
		out.Reason = "incomplete: entity id is empty"
		return out
	}
	out.complete = true

	expected := strings.TrimSpace(c.Equals)
	actual, asserted := snap[entityID]
	switch {
	case !asserted:
		out.Reason = fmt.Sprintf("%s is not asserted in the scenario", entityID)
	case actual != expected:
		out.Reason = fmt.Sprintf("%s is %q, expected %q", entityID, actual, expected)
	default:
		out.Matched = true
		out.Reason = fmt.Sprintf("%s is %q", entityID, actual)
	}
	return out
}
