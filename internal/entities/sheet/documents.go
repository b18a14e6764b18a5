package sheet

import (
	"encoding/json"
	"fmt"
)

// AttributeDefinition is one numeric attribute on the sheet (STR, DEX, ...).
// Emoji and Color are display hints, opaque to the resolution core.
type AttributeDefinition struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Emoji       string        `json:"emoji,omitempty"`
	Color       string        `json:"color,omitempty"`
	Schema      NumericSchema `json:"schema"`
}

// AttributesConfig is the attributes document
type AttributesConfig struct {
	Title      string                `json:"title"`
	Attributes []AttributeDefinition `json:"attributes"`
}

// CombatStatDefinition is one combat statistic, structurally identical to an
// attribute but grouped differently on the sheet.
type CombatStatDefinition struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Emoji       string        `json:"emoji,omitempty"`
	Color       string        `json:"color,omitempty"`
	Schema      NumericSchema `json:"schema"`
}

// CombatStatEntry is either a single stat or a (current, maximum) pair.
// A pair models quantities like health where the cap is itself editable:
// current's schema carries the dynamic maximum, maximum's a concrete one.
// On the wire a pair is a 2-element array.
type CombatStatEntry struct {
	Single *CombatStatDefinition
	Pair   *CombatStatPair
}

// CombatStatPair is the (current, maximum) form of a combat stat
type CombatStatPair struct {
	Current CombatStatDefinition
	Maximum CombatStatDefinition
}

// UnmarshalJSON accepts an object (single) or a 2-element array (pair)
func (e *CombatStatEntry) UnmarshalJSON(data []byte) error {
	var pair []CombatStatDefinition
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("paired combat stat must have exactly 2 entries, got %d", len(pair))
		}
		*e = CombatStatEntry{Pair: &CombatStatPair{Current: pair[0], Maximum: pair[1]}}
		return nil
	}

	var single CombatStatDefinition
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("combat stat must be an object or a 2-element array: %w", err)
	}
	*e = CombatStatEntry{Single: &single}
	return nil
}

// MarshalJSON writes the array form for pairs
func (e CombatStatEntry) MarshalJSON() ([]byte, error) {
	if e.Pair != nil {
		return json.Marshal([]CombatStatDefinition{e.Pair.Current, e.Pair.Maximum})
	}
	return json.Marshal(e.Single)
}

// Definitions flattens the entry into its individual stat definitions
func (e *CombatStatEntry) Definitions() []*CombatStatDefinition {
	if e.Pair != nil {
		return []*CombatStatDefinition{&e.Pair.Current, &e.Pair.Maximum}
	}
	if e.Single != nil {
		return []*CombatStatDefinition{e.Single}
	}
	return nil
}

// CombatStatsConfig is the combat-stats document
type CombatStatsConfig struct {
	Title string            `json:"title"`
	Stats []CombatStatEntry `json:"stats"`
}

// InfoFieldKind discriminates the info-field union
type InfoFieldKind string

// Info field kinds
const (
	InfoFieldText InfoFieldKind = "text"
	InfoFieldEnum InfoFieldKind = "enum"
)

// InfoFieldDefinition is one character-info field: free text, or a choice
// from a referenced enumeration. Kind selects which fields are meaningful.
type InfoFieldDefinition struct {
	Kind        InfoFieldKind `json:"kind"`
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Placeholder string        `json:"placeholder,omitempty"`
	EnumRef     string        `json:"enumRef,omitempty"`
	Required    bool          `json:"required,omitempty"`
	Default     string        `json:"default,omitempty"`
}

// CharacterInfoConfig is the character-info document
type CharacterInfoConfig struct {
	Title  string                `json:"title"`
	Fields []InfoFieldDefinition `json:"fields"`
}

// InventoryTabDefinition is one inventory tab: its item catalog is the
// referenced enumeration, its slot count the formula evaluated over the
// character's attributes.
type InventoryTabDefinition struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	EnumRef      string `json:"enumRef"`
	SlotFormula  string `json:"slotFormula"`
	EmptyMessage string `json:"emptyMessage"`
}

// InventoryConfig is the inventory document
type InventoryConfig struct {
	Title string                   `json:"title"`
	Tabs  []InventoryTabDefinition `json:"tabs"`
}

// LevelBounds constrains character levels: Min <= Default <= Max, all >= 1
type LevelBounds struct {
	Min     int `json:"min"`
	Default int `json:"default"`
	Max     int `json:"max"`
}

// LevelClassConfig is the level/class document. EnumRef names the class
// catalog enumeration.
type LevelClassConfig struct {
	Title      string      `json:"title"`
	EnumRef    string      `json:"enumRef"`
	Levels     LevelBounds `json:"levels"`
	ClassLabel string      `json:"classLabel"`
	LevelLabel string      `json:"levelLabel"`
}
