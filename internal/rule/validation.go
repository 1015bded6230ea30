package rule

import (
	"strconv"
	"strings"
)

// Brightness bounds for zigbee2mqtt_light actions.
const (
	minBrightness = 0
	maxBrightness = 255
)

// Pre-computed validation set for O(1) arm mode lookups.
var validArmModes map[ArmMode]struct{}

func init() {
	validArmModes = make(map[ArmMode]struct{}, len(AllArmModes()))
	for _, m := range AllArmModes() {
		validArmModes[m] = struct{}{}
	}
}

// FieldErrors maps a field name to a user-correctable validation message.
// An empty (or nil) map means the row is valid. Field errors are reported,
// never returned as Go errors: they are data for the caller to render.
type FieldErrors map[string]string

// OK reports whether no field failed validation.
func (fe FieldErrors) OK() bool {
	return len(fe) == 0
}

// ValidateCondition validates one condition row against its variant rules.
// Raw values are trimmed before checking; surrounding whitespace never
// distinguishes two values.
func ValidateCondition(c ConditionRow) FieldErrors {
	fe := FieldErrors{}

	switch c.Kind {
	case ConditionEntityState:
		if strings.TrimSpace(c.EntityID) == "" {
			fe["entity_id"] = "entity id is required"
		}
		// Equals may be empty: it matches an empty state.
	default:
		fe["kind"] = "unknown condition kind"
	}

	return fe
}

// ValidateAction validates one action row against its variant rules.
func ValidateAction(a ActionRow) FieldErrors {
	fe := FieldErrors{}

	switch a.Kind {
	case ActionAlarmArm:
		if _, ok := validArmModes[ArmMode(strings.TrimSpace(string(a.Mode)))]; !ok {
			fe["mode"] = "mode must be one of: armed_away, armed_home, armed_night, armed_vacation"
		}

	case ActionZigbeeLight:
		entityID := strings.TrimSpace(a.EntityID)
		if entityID == "" {
			fe["entity_id"] = "entity id is required"
		} else if !strings.HasPrefix(entityID, ZigbeeEntityPrefix) {
			fe["entity_id"] = "entity id must start with " + ZigbeeEntityPrefix
		}

		switch LightState(strings.TrimSpace(string(a.State))) {
		case LightOn, LightOff:
		default:
			fe["state"] = "state must be on or off"
		}

		if msg := validateBrightness(a.Brightness); msg != "" {
			fe["brightness"] = msg
		}

	default:
		fe["kind"] = "unknown action kind"
	}

	return fe
}

// validateBrightness checks an optional brightness string. Empty is valid;
// anything else must parse as an integer in [0,255]. Out-of-range values
// are an error, not clamped.
func validateBrightness(v string) string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return ""
	}
	level, err := strconv.Atoi(trimmed)
	if err != nil {
		return "brightness must be a whole number"
	}
	if level < minBrightness || level > maxBrightness {
		return "brightness must be 0-255"
	}
	return ""
}

// NormalizeCondition trims string fields and clears fields that do not
// belong to the row's variant. Normalisation is idempotent.
func NormalizeCondition(c ConditionRow) ConditionRow {
	c.ID = strings.TrimSpace(c.ID)

	switch c.Kind {
	case ConditionEntityState:
		c.EntityID = strings.TrimSpace(c.EntityID)
		c.Equals = strings.TrimSpace(c.Equals)
	default:
		// Unknown kinds keep their payload untouched; validation flags them.
	}

	return c
}

// NormalizeAction trims string fields and defensively clears fields that
// do not belong to the row's variant, so a row edited from one kind to
// another cannot smuggle stale values. Idempotent.
func NormalizeAction(a ActionRow) ActionRow {
	a.ID = strings.TrimSpace(a.ID)

	switch a.Kind {
	case ActionAlarmArm:
		a.Mode = ArmMode(strings.TrimSpace(string(a.Mode)))
		a.EntityID = ""
		a.State = ""
		a.Brightness = ""

	case ActionZigbeeLight:
		a.Mode = ""
		a.EntityID = strings.TrimSpace(a.EntityID)
		a.State = LightState(strings.TrimSpace(string(a.State)))
		a.Brightness = strings.TrimSpace(a.Brightness)

	default:
		// Unknown kinds keep their payload untouched; validation flags them.
	}

	return a
}
