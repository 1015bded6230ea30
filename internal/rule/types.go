package rule

import (
	"github.com/google/uuid"

	"github.com/nerrad567/gray-logic-sentry/internal/schedule"
)

// ConditionKind tags a condition variant.
type ConditionKind string

// Condition kinds. The set is closed: every dispatch site switches
// exhaustively and rejects anything else.
const (
	// ConditionEntityState matches an external entity's state against an
	// expected value.
	ConditionEntityState ConditionKind = "entity_state"
)

// ActionKind tags an action variant.
type ActionKind string

// Action kinds.
const (
	// ActionAlarmArm arms the alarm panel in a given mode.
	ActionAlarmArm ActionKind = "alarm_arm"

	// ActionZigbeeLight switches a zigbee2mqtt light on or off, optionally
	// at a brightness level.
	ActionZigbeeLight ActionKind = "zigbee2mqtt_light"
)

// ArmMode is an alarm arming mode.
type ArmMode string

// Alarm arming modes. The enumeration is closed; free-text modes are a
// validation failure, never coerced.
const (
	ArmedAway     ArmMode = "armed_away"
	ArmedHome     ArmMode = "armed_home"
	ArmedNight    ArmMode = "armed_night"
	ArmedVacation ArmMode = "armed_vacation"
)

// AllArmModes returns all valid alarm arming modes.
func AllArmModes() []ArmMode {
	return []ArmMode{ArmedAway, ArmedHome, ArmedNight, ArmedVacation}
}

// LightState is the target state of a light action.
type LightState string

// Light states.
const (
	LightOn  LightState = "on"
	LightOff LightState = "off"
)

// ZigbeeEntityPrefix is the namespace prefix required on zigbee2mqtt
// entity ids.
const ZigbeeEntityPrefix = "zigbee2mqtt/"

// ConditionRow is one atomic predicate over an external entity's state.
//
// EntityID references the external registry by value; the core never holds
// a live pointer to the entity. Equals is compared exactly (post-trim,
// case-sensitive) and may legitimately be empty to match an empty state.
type ConditionRow struct {
	// ID is a stable row identity used for reordering and result mapping.
	ID string `json:"id"`

	// Kind selects the variant. Only fields relevant to the kind are set.
	Kind ConditionKind `json:"kind"`

	// EntityID is the external entity reference (entity_state).
	EntityID string `json:"entity_id,omitempty"`

	// Equals is the expected state (entity_state).
	Equals string `json:"equals,omitempty"`
}

// ActionRow is one atomic effect to apply when a rule fires.
type ActionRow struct {
	// ID is a stable row identity used for reordering.
	ID string `json:"id"`

	// Kind selects the variant. Only fields relevant to the kind are set.
	Kind ActionKind `json:"kind"`

	// Mode is the arming mode (alarm_arm).
	Mode ArmMode `json:"mode,omitempty"`

	// EntityID is the target light, z2m-namespaced (zigbee2mqtt_light).
	EntityID string `json:"entity_id,omitempty"`

	// State is the target light state (zigbee2mqtt_light).
	State LightState `json:"state,omitempty"`

	// Brightness is an optional level 0-255, kept as a decimal string to
	// match the wire contract (zigbee2mqtt_light).
	Brightness string `json:"brightness,omitempty"`
}

// CombineMode selects how condition results combine into the fire decision.
type CombineMode string

// Combine modes.
const (
	// CombineAll fires only when every condition matches.
	CombineAll CombineMode = "all"

	// CombineAny fires when at least one condition matches.
	CombineAny CombineMode = "any"
)

// Document is a named when/then automation rule.
//
// Conditions may be empty (the rule never fires) but is never nil.
// Schedule is optional; when present it must hold a valid window.
type Document struct {
	ID          string
	Name        string
	Enabled     bool
	Conditions  []ConditionRow
	CombineMode CombineMode
	Actions     []ActionRow
	Schedule    *schedule.Schedule
}

// GenerateID creates a new unique id for a document or row.
func GenerateID() string {
	return uuid.New().String()
}
