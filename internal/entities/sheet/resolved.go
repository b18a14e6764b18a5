package sheet

// ResolvedConfiguration is the validated, cross-checked union of all six
// documents for one load generation. It is immutable once produced; callers
// must not mutate the contained slices.
type ResolvedConfiguration struct {
	Enums         []EnumDefinition
	Attributes    *AttributesConfig
	CombatStats   *CombatStatsConfig
	CharacterInfo *CharacterInfoConfig
	Inventory     *InventoryConfig
	LevelClass    *LevelClassConfig

	enumIndex map[string]*EnumDefinition
}

// NewResolvedConfiguration builds the resolved union and its enum index
func NewResolvedConfiguration(
	enums []EnumDefinition,
	attributes *AttributesConfig,
	combatStats *CombatStatsConfig,
	characterInfo *CharacterInfoConfig,
	inventory *InventoryConfig,
	levelClass *LevelClassConfig,
) *ResolvedConfiguration {
	cfg := &ResolvedConfiguration{
		Enums:         enums,
		Attributes:    attributes,
		CombatStats:   combatStats,
		CharacterInfo: characterInfo,
		Inventory:     inventory,
		LevelClass:    levelClass,
		enumIndex:     make(map[string]*EnumDefinition, len(enums)),
	}
	for i := range cfg.Enums {
		cfg.enumIndex[cfg.Enums[i].ID] = &cfg.Enums[i]
	}
	return cfg
}

// Enum looks up an enumeration by ID
func (c *ResolvedConfiguration) Enum(id string) (*EnumDefinition, bool) {
	e, ok := c.enumIndex[id]
	return e, ok
}

// CombatStatDefinitions flattens paired stats into individual definitions,
// preserving document order.
func (c *ResolvedConfiguration) CombatStatDefinitions() []*CombatStatDefinition {
	var defs []*CombatStatDefinition
	for i := range c.CombatStats.Stats {
		defs = append(defs, c.CombatStats.Stats[i].Definitions()...)
	}
	return defs
}

// AttributeByID finds an attribute definition, nil when absent
func (c *ResolvedConfiguration) AttributeByID(id string) *AttributeDefinition {
	for i := range c.Attributes.Attributes {
		if c.Attributes.Attributes[i].ID == id {
			return &c.Attributes.Attributes[i]
		}
	}
	return nil
}

// CombatStatByID finds a flattened combat stat definition along with its
// owning entry, nil when absent.
func (c *ResolvedConfiguration) CombatStatByID(id string) (*CombatStatDefinition, *CombatStatEntry) {
	for i := range c.CombatStats.Stats {
		entry := &c.CombatStats.Stats[i]
		for _, def := range entry.Definitions() {
			if def.ID == id {
				return def, entry
			}
		}
	}
	return nil, nil
}

// InfoFieldByID finds an info field definition, nil when absent
func (c *ResolvedConfiguration) InfoFieldByID(id string) *InfoFieldDefinition {
	for i := range c.CharacterInfo.Fields {
		if c.CharacterInfo.Fields[i].ID == id {
			return &c.CharacterInfo.Fields[i]
		}
	}
	return nil
}

// InventoryTabByID finds an inventory tab definition, nil when absent
func (c *ResolvedConfiguration) InventoryTabByID(id string) *InventoryTabDefinition {
	for i := range c.Inventory.Tabs {
		if c.Inventory.Tabs[i].ID == id {
			return &c.Inventory.Tabs[i]
		}
	}
	return nil
}
