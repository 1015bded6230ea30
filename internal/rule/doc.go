// Package rule provides the when/then rule model for Gray Logic Sentry.
//
// A rule Document pairs an ordered list of conditions ("when") with an
// ordered list of actions ("then"), a combine mode (all/any), and an
// optional weekly schedule. Documents are value-owned: conditions, actions
// and schedule belong exclusively to their document and are copied, never
// aliased, across rules.
//
// # Variant Model
//
// Conditions and actions are closed tagged variants. Each row carries a
// kind tag plus the fields relevant to that kind; every site that inspects
// a row (validation, normalisation, encoding, evaluation) switches on the
// kind and treats an unrecognised tag as an error, never as a no-op. An
// unrecognised action silently dropped would turn a misconfigured rule into
// a rule that appears healthy but does less than the user asked for.
//
// # Validation
//
// Field validation is data, not errors: ValidateCondition and ValidateAction
// return FieldErrors keyed by field name so a caller can render them next to
// the offending input. Structural problems (unknown kind on decode, broken
// schedule shape) are typed errors checked with errors.Is.
//
// # Wire Shape
//
// Encode/Decode produce and consume the canonical JSON consumed by the
// server-side rule engine: {name, enabled, conditions, combine_mode,
// actions, schedule}. Decode fails closed: one unrecognised variant tag
// rejects the whole document.
package rule
