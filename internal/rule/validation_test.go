package rule

import "testing"

func TestValidateCondition(t *testing.T) {
	tests := []struct {
		name      string
		condition ConditionRow
		wantField string // "" means valid
	}{
		{
			name:      "valid entity state",
			condition: ConditionRow{Kind: ConditionEntityState, EntityID: "front_door.contact", Equals: "open"},
		},
		{
			name:      "empty equals matches empty state",
			condition: ConditionRow{Kind: ConditionEntityState, EntityID: "hall.motion", Equals: ""},
		},
		{
			name:      "empty entity id",
			condition: ConditionRow{Kind: ConditionEntityState, EntityID: "", Equals: "on"},
			wantField: "entity_id",
		},
		{
			name:      "whitespace-only entity id",
			condition: ConditionRow{Kind: ConditionEntityState, EntityID: "   ", Equals: "on"},
			wantField: "entity_id",
		},
		{
			name:      "unknown kind",
			condition: ConditionRow{Kind: "sun_elevation"},
			wantField: "kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := ValidateCondition(tt.condition)
			if tt.wantField == "" {
				if !fe.OK() {
					t.Errorf("expected valid, got field errors %v", fe)
				}
				return
			}
			if _, ok := fe[tt.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.wantField, fe)
			}
		})
	}
}

func TestValidateAction(t *testing.T) {
	tests := []struct {
		name      string
		action    ActionRow
		wantField string
	}{
		{
			name:   "valid alarm arm",
			action: ActionRow{Kind: ActionAlarmArm, Mode: ArmedAway},
		},
		{
			name:      "free-text mode rejected",
			action:    ActionRow{Kind: ActionAlarmArm, Mode: "armed_party"},
			wantField: "mode",
		},
		{
			name:      "empty mode rejected",
			action:    ActionRow{Kind: ActionAlarmArm},
			wantField: "mode",
		},
		{
			name:   "valid light",
			action: ActionRow{Kind: ActionZigbeeLight, EntityID: "zigbee2mqtt/porch_light", State: LightOn},
		},
		{
			name:   "valid light with brightness",
			action: ActionRow{Kind: ActionZigbeeLight, EntityID: "zigbee2mqtt/porch_light", State: LightOn, Brightness: "200"},
		},
		{
			name:      "missing z2m prefix",
			action:    ActionRow{Kind: ActionZigbeeLight, EntityID: "porch_light", State: LightOn},
			wantField: "entity_id",
		},
		{
			name:      "empty entity id",
			action:    ActionRow{Kind: ActionZigbeeLight, State: LightOff},
			wantField: "entity_id",
		},
		{
			name:      "free-text state rejected",
			action:    ActionRow{Kind: ActionZigbeeLight, EntityID: "zigbee2mqtt/porch_light", State: "dimmed"},
			wantField: "state",
		},
		{
			name:      "brightness out of range",
			action:    ActionRow{Kind: ActionZigbeeLight, EntityID: "zigbee2mqtt/porch_light", State: LightOn, Brightness: "300"},
			wantField: "brightness",
		},
		{
			name:      "brightness not numeric",
			action:    ActionRow{Kind: ActionZigbeeLight, EntityID: "zigbee2mqtt/porch_light", State: LightOn, Brightness: "abc"},
			wantField: "brightness",
		},
		{
			name:      "brightness negative",
			action:    ActionRow{Kind: ActionZigbeeLight, EntityID: "zigbee2mqtt/porch_light", State: LightOn, Brightness: "-5"},
			wantField: "brightness",
		},
		{
			name:   "brightness empty is fine",
			action: ActionRow{Kind: ActionZigbeeLight, EntityID: "zigbee2mqtt/porch_light", State: LightOff, Brightness: ""},
		},
		{
			name:      "unknown kind",
			action:    ActionRow{Kind: "sonos_announce"},
			wantField: "kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := ValidateAction(tt.action)
			if tt.wantField == "" {
				if !fe.OK() {
					t.Errorf("expected valid, got field errors %v", fe)
				}
				return
			}
			if _, ok := fe[tt.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.wantField, fe)
			}
		})
	}
}

func TestNormalizeConditionTrims(t *testing.T) {
	c := ConditionRow{Kind: ConditionEntityState, EntityID: "  hall.motion  ", Equals: " on "}
	got := NormalizeCondition(c)

	if got.EntityID != "hall.motion" || got.Equals != "on" {
		t.Errorf("normalise did not trim: %+v", got)
	}
}

func TestNormalizeActionClearsForeignFields(t *testing.T) {
	// A row edited from a light action into an alarm action must not keep
	// the stale light payload.
	a := ActionRow{
		Kind:       ActionAlarmArm,
		Mode:       " armed_home ",
		EntityID:   "zigbee2mqtt/porch_light",
		State:      LightOn,
		Brightness: "128",
	}
	got := NormalizeAction(a)

	if got.Mode != ArmedHome {
		t.Errorf("mode = %q, want %q", got.Mode, ArmedHome)
	}
	if got.EntityID != "" || got.State != "" || got.Brightness != "" {
		t.Errorf("light fields not cleared: %+v", got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	conditions := []ConditionRow{
		{Kind: ConditionEntityState, EntityID: " a ", Equals: " b "},
		{Kind: "unknown", EntityID: " keep "},
	}
	for _, c := range conditions {
		once := NormalizeCondition(c)
		twice := NormalizeCondition(once)
		if once != twice {
			t.Errorf("NormalizeCondition not idempotent: %+v vs %+v", once, twice)
		}
	}

	actions := []ActionRow{
		{Kind: ActionAlarmArm, Mode: " armed_away ", EntityID: "x"},
		{Kind: ActionZigbeeLight, EntityID: " zigbee2mqtt/l ", State: " on ", Brightness: " 10 "},
	}
	for _, a := range actions {
		once := NormalizeAction(a)
		twice := NormalizeAction(once)
		if once != twice {
			t.Errorf("NormalizeAction not idempotent: %+v vs %+v", once, twice)
		}
	}
}
