// Package charsync reconciles a character record's shape against a resolved
// configuration. Detection and reconciliation are independent pure
// operations: NeedsSync never mutates, Sync always returns a fresh record.
package charsync

import (
	"github.com/sheetforge/sheet-api/internal/entities/sheet"
	"github.com/sheetforge/sheet-api/internal/formula"
)

// NeedsSync reports whether the record's shape deviates from the
// configuration: a key-set mismatch in any map category, or an inventory
// tab whose current slot count differs from its formula's value over the
// record's current attributes.
func NeedsSync(record *sheet.CharacterRecord, cfg *sheet.ResolvedConfiguration) bool {
	attrIDs := make(map[string]bool, len(cfg.Attributes.Attributes))
	for _, a := range cfg.Attributes.Attributes {
		attrIDs[a.ID] = true
	}
	if !sameKeys(record.Attributes, attrIDs) {
		return true
	}

	statIDs := map[string]bool{}
	for _, def := range cfg.CombatStatDefinitions() {
		statIDs[def.ID] = true
	}
	if !sameKeys(record.CombatStats, statIDs) {
		return true
	}

	fieldIDs := make(map[string]bool, len(cfg.CharacterInfo.Fields))
	for _, f := range cfg.CharacterInfo.Fields {
		fieldIDs[f.ID] = true
	}
	if len(record.CharacterInfo) != len(fieldIDs) {
		return true
	}
	for id := range record.CharacterInfo {
		if !fieldIDs[id] {
			return true
		}
	}

	if len(record.InventorySlots) != len(cfg.Inventory.Tabs) {
		return true
	}
	for _, tab := range cfg.Inventory.Tabs {
		slots, present := record.InventorySlots[tab.ID]
		if !present {
			return true
		}
		if len(slots) != formula.Evaluate(tab.SlotFormula, record.Attributes) {
			return true
		}
	}

	return false
}

// Sync reconciles record against cfg and returns the updated record.
// Each map category is rebuilt to exactly the configuration's key set:
// existing values are preserved, missing keys get defaults, and keys with
// no home in the configuration are dropped. Attributes are reconciled
// before inventory because slot counts are formulas over the attributes.
// Sync is idempotent: Sync(Sync(r, c), c) == Sync(r, c).
func Sync(record *sheet.CharacterRecord, cfg *sheet.ResolvedConfiguration) *sheet.CharacterRecord {
	out := record.Clone()

	attributes := make(map[string]float64, len(cfg.Attributes.Attributes))
	for _, a := range cfg.Attributes.Attributes {
		if v, ok := record.Attributes[a.ID]; ok {
			attributes[a.ID] = v
		} else {
			attributes[a.ID] = a.Schema.DefaultValue()
		}
	}
	out.Attributes = attributes

	defs := cfg.CombatStatDefinitions()
	combatStats := make(map[string]float64, len(defs))
	for _, def := range defs {
		if v, ok := record.CombatStats[def.ID]; ok {
			combatStats[def.ID] = v
		} else {
			combatStats[def.ID] = def.Schema.DefaultValue()
		}
	}
	out.CombatStats = combatStats

	info := make(map[string]string, len(cfg.CharacterInfo.Fields))
	for _, field := range cfg.CharacterInfo.Fields {
		if v, ok := record.CharacterInfo[field.ID]; ok {
			info[field.ID] = v
		} else {
			info[field.ID] = infoFieldDefault(&field, cfg)
		}
	}
	out.CharacterInfo = info

	slots := make(map[string][]string, len(cfg.Inventory.Tabs))
	for _, tab := range cfg.Inventory.Tabs {
		count := formula.Evaluate(tab.SlotFormula, out.Attributes)
		existing := record.InventorySlots[tab.ID]
		slots[tab.ID] = resizeSlots(existing, count, tabFiller(&tab, cfg))
	}
	out.InventorySlots = slots

	return out
}

// infoFieldDefault picks the value for a field absent from the record:
// the declared default, or for enum fields the first value of the
// referenced enumeration, or empty.
func infoFieldDefault(field *sheet.InfoFieldDefinition, cfg *sheet.ResolvedConfiguration) string {
	if field.Default != "" {
		return field.Default
	}
	if field.Kind == sheet.InfoFieldEnum {
		if e, ok := cfg.Enum(field.EnumRef); ok {
			return e.FirstValue()
		}
	}
	return ""
}

func tabFiller(tab *sheet.InventoryTabDefinition, cfg *sheet.ResolvedConfiguration) string {
	if e, ok := cfg.Enum(tab.EnumRef); ok {
		return e.FirstValue()
	}
	return ""
}

// resizeSlots grows or shrinks a slot array to count entries. Overlapping
// entries are preserved; growth pads with filler; shrinking truncates from
// the end, discarding the highest-indexed slots first.
func resizeSlots(existing []string, count int, filler string) []string {
	out := make([]string, count)
	for i := 0; i < count; i++ {
		if i < len(existing) {
			out[i] = existing[i]
		} else {
			out[i] = filler
		}
	}
	return out
}

func sameKeys(m map[string]float64, ids map[string]bool) bool {
	if len(m) != len(ids) {
		return false
	}
	for k := range m {
		if !ids[k] {
			return false
		}
	}
	return true
}
