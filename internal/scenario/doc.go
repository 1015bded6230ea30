// Package scenario provides dry-run testing for Sentry rules.
//
// A Scenario is a named, hand-authored snapshot of asserted entity states
// ("pretend the front door is open and the hall motion sensor reads on").
// The Store persists scenarios as a single JSON blob in the configured
// key-value store; Evaluate simulates a rule document against a scenario
// and explains, condition by condition, whether the rule would fire.
//
// # Storage Degradation
//
// Load never raises on corruption. A blob that is not a JSON array reads
// as "no scenarios"; an entry missing its name or rows is dropped while
// well-formed siblings survive. The corrupt blob itself is left untouched:
// a read path must never issue destructive writes, and the user can still
// inspect or export the raw data. Save overwrites the whole blob and
// propagates write failures verbatim.
//
// # Evaluation Semantics
//
// The evaluator mirrors the server-side engine's fire decision for the
// condition and action shapes this module defines and must not diverge
// from it. Matching is exact (post-trim, case-sensitive); an entity absent
// from the scenario never matches; later rows override earlier ones for
// the same entity id; and a rule with zero complete conditions never fires
// under either combine mode, so a condition-less rule cannot become an
// accidental always-on rule.
//
// The assume-for-seconds value does not advance any clock: the fire
// decision is instantaneous, and the assumed-valid-until timestamp on the
// result exists purely so callers can present timing-sensitive rules
// (entry delays and the like) honestly.
package scenario
