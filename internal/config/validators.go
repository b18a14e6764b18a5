package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sheetforge/sheet-api/internal/documents"
	"github.com/sheetforge/sheet-api/internal/entities/sheet"
)

// Per-document validators. Each is a pure function from raw JSON to either
// a validated document or the list of problems found, reported with the
// document name and a dotted path to the offending element.

func validateEnums(raw []byte) ([]sheet.EnumDefinition, []ValidationError) {
	doc := documents.NameEnums

	var enums []sheet.EnumDefinition
	if err := json.Unmarshal(raw, &enums); err != nil {
		return nil, []ValidationError{{doc, "", "invalid JSON: " + err.Error()}}
	}

	var errs []ValidationError
	if len(enums) == 0 {
		errs = append(errs, ValidationError{doc, "", "at least one enumeration is required"})
	}

	seen := map[string]string{}
	for i, e := range enums {
		path := fmt.Sprintf("enums.%d", i)
		if e.ID == "" {
			errs = append(errs, ValidationError{doc, path + ".id", "id is required"})
		}
		if e.Label == "" {
			errs = append(errs, ValidationError{doc, path + ".label", "label is required"})
		}
		if prev, dup := seen[e.ID]; dup && e.ID != "" {
			errs = append(errs, ValidationError{doc, path + ".id",
				fmt.Sprintf("duplicate enum ID %q, first defined at %s", e.ID, prev)})
		} else if e.ID != "" {
			seen[e.ID] = path
		}
		if len(e.Values) == 0 {
			errs = append(errs, ValidationError{doc, path + ".values", "at least one value is required"})
		}
		names := map[string]bool{}
		for j, v := range e.Values {
			vpath := fmt.Sprintf("%s.values.%d", path, j)
			if v.Name == "" {
				errs = append(errs, ValidationError{doc, vpath, "value name is required"})
				continue
			}
			if names[v.Name] {
				errs = append(errs, ValidationError{doc, vpath,
					fmt.Sprintf("duplicate value name %q", v.Name)})
			}
			names[v.Name] = true
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return enums, nil
}

func validateAttributes(raw []byte) (*sheet.AttributesConfig, []ValidationError) {
	doc := documents.NameAttributes

	var cfg sheet.AttributesConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, []ValidationError{{doc, "", "invalid JSON: " + err.Error()}}
	}

	var errs []ValidationError
	if strings.TrimSpace(cfg.Title) == "" {
		errs = append(errs, ValidationError{doc, "title", "title is required"})
	}
	if len(cfg.Attributes) == 0 {
		errs = append(errs, ValidationError{doc, "attributes", "at least one attribute is required"})
	}

	seen := map[string]bool{}
	for i, a := range cfg.Attributes {
		path := fmt.Sprintf("attributes.%d", i)
		errs = append(errs, checkDefinition(doc, path, a.ID, a.Label, &a.Schema, seen)...)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

func validateCombatStats(raw []byte) (*sheet.CombatStatsConfig, []ValidationError) {
	doc := documents.NameCombatStats

	var cfg sheet.CombatStatsConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, []ValidationError{{doc, "", "invalid JSON: " + err.Error()}}
	}

	var errs []ValidationError
	if strings.TrimSpace(cfg.Title) == "" {
		errs = append(errs, ValidationError{doc, "title", "title is required"})
	}
	if len(cfg.Stats) == 0 {
		errs = append(errs, ValidationError{doc, "stats", "at least one combat stat is required"})
	}

	seen := map[string]bool{}
	for i, entry := range cfg.Stats {
		path := fmt.Sprintf("stats.%d", i)
		if entry.Pair != nil {
			cur, maximum := &entry.Pair.Current, &entry.Pair.Maximum
			errs = append(errs, checkDefinition(doc, path+".0", cur.ID, cur.Label, &cur.Schema, seen)...)
			errs = append(errs, checkDefinition(doc, path+".1", maximum.ID, maximum.Label, &maximum.Schema, seen)...)

			// A pair exists to model current/maximum: the current side is
			// capped by the maximum side's live value, so the maximum side
			// must have a concrete numeric cap of its own.
			if !cur.Schema.HasDynamicMaximum() {
				errs = append(errs, ValidationError{doc, path + ".0.schema.maximum",
					"first of a paired stat must have maximum \"dynamic\""})
			}
			if maximum.Schema.Maximum == nil || maximum.Schema.Maximum.Dynamic {
				errs = append(errs, ValidationError{doc, path + ".1.schema.maximum",
					"second of a paired stat must have a concrete numeric maximum"})
			}
			continue
		}
		if entry.Single != nil {
			errs = append(errs, checkDefinition(doc, path, entry.Single.ID, entry.Single.Label, &entry.Single.Schema, seen)...)
			continue
		}
		errs = append(errs, ValidationError{doc, path, "combat stat entry is empty"})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

func validateCharacterInfo(raw []byte) (*sheet.CharacterInfoConfig, []ValidationError) {
	doc := documents.NameCharacterInfo

	var cfg sheet.CharacterInfoConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, []ValidationError{{doc, "", "invalid JSON: " + err.Error()}}
	}

	var errs []ValidationError
	if strings.TrimSpace(cfg.Title) == "" {
		errs = append(errs, ValidationError{doc, "title", "title is required"})
	}
	if len(cfg.Fields) == 0 {
		errs = append(errs, ValidationError{doc, "fields", "at least one field is required"})
	}

	seen := map[string]bool{}
	for i, field := range cfg.Fields {
		path := fmt.Sprintf("fields.%d", i)
		if field.ID == "" {
			errs = append(errs, ValidationError{doc, path + ".id", "id is required"})
		} else if seen[field.ID] {
			errs = append(errs, ValidationError{doc, path + ".id",
				fmt.Sprintf("duplicate field ID %q", field.ID)})
		}
		seen[field.ID] = true
		if field.Label == "" {
			errs = append(errs, ValidationError{doc, path + ".label", "label is required"})
		}

		switch field.Kind {
		case sheet.InfoFieldText:
			if field.EnumRef != "" {
				errs = append(errs, ValidationError{doc, path + ".enumRef",
					"text fields cannot reference an enumeration"})
			}
		case sheet.InfoFieldEnum:
			if field.EnumRef == "" {
				errs = append(errs, ValidationError{doc, path + ".enumRef",
					"enum fields must reference an enumeration"})
			}
		default:
			errs = append(errs, ValidationError{doc, path + ".kind",
				fmt.Sprintf("kind must be %q or %q", sheet.InfoFieldText, sheet.InfoFieldEnum)})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

func validateInventory(raw []byte) (*sheet.InventoryConfig, []ValidationError) {
	doc := documents.NameInventory

	var cfg sheet.InventoryConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, []ValidationError{{doc, "", "invalid JSON: " + err.Error()}}
	}

	var errs []ValidationError
	if strings.TrimSpace(cfg.Title) == "" {
		errs = append(errs, ValidationError{doc, "title", "title is required"})
	}
	if len(cfg.Tabs) == 0 {
		errs = append(errs, ValidationError{doc, "tabs", "at least one tab is required"})
	}

	seen := map[string]bool{}
	for i, tab := range cfg.Tabs {
		path := fmt.Sprintf("tabs.%d", i)
		if tab.ID == "" {
			errs = append(errs, ValidationError{doc, path + ".id", "id is required"})
		} else if seen[tab.ID] {
			errs = append(errs, ValidationError{doc, path + ".id",
				fmt.Sprintf("duplicate tab ID %q", tab.ID)})
		}
		seen[tab.ID] = true
		if tab.Label == "" {
			errs = append(errs, ValidationError{doc, path + ".label", "label is required"})
		}
		if tab.EnumRef == "" {
			errs = append(errs, ValidationError{doc, path + ".enumRef", "enumRef is required"})
		}
		if strings.TrimSpace(tab.SlotFormula) == "" {
			errs = append(errs, ValidationError{doc, path + ".slotFormula", "slotFormula is required"})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

func validateLevelClass(raw []byte) (*sheet.LevelClassConfig, []ValidationError) {
	doc := documents.NameLevelClass

	var cfg sheet.LevelClassConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, []ValidationError{{doc, "", "invalid JSON: " + err.Error()}}
	}

	var errs []ValidationError
	if strings.TrimSpace(cfg.Title) == "" {
		errs = append(errs, ValidationError{doc, "title", "title is required"})
	}
	if cfg.EnumRef == "" {
		errs = append(errs, ValidationError{doc, "enumRef", "enumRef is required"})
	}
	if cfg.Levels.Min < 1 {
		errs = append(errs, ValidationError{doc, "levels.min", "min must be at least 1"})
	}
	if cfg.Levels.Min > cfg.Levels.Default || cfg.Levels.Default > cfg.Levels.Max {
		errs = append(errs, ValidationError{doc, "levels",
			fmt.Sprintf("levels must satisfy min <= default <= max, got %d <= %d <= %d",
				cfg.Levels.Min, cfg.Levels.Default, cfg.Levels.Max)})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

// checkDefinition validates the shared shape of attribute-like definitions
// and records the ID in seen for duplicate detection.
func checkDefinition(doc, path, id, label string, schema *sheet.NumericSchema, seen map[string]bool) []ValidationError {
	var errs []ValidationError
	if id == "" {
		errs = append(errs, ValidationError{doc, path + ".id", "id is required"})
	} else if seen[id] {
		errs = append(errs, ValidationError{doc, path + ".id",
			fmt.Sprintf("duplicate ID %q", id)})
	}
	seen[id] = true
	if label == "" {
		errs = append(errs, ValidationError{doc, path + ".label", "label is required"})
	}
	for _, problem := range schema.Problems() {
		errs = append(errs, ValidationError{doc, path + ".schema", problem})
	}
	return errs
}
