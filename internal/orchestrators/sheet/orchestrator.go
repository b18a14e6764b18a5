// Package sheet implements the character sheet orchestrator
package sheet

import (
	"context"
	"log/slog"

	"github.com/sheetforge/sheet-api/internal/charsync"
	"github.com/sheetforge/sheet-api/internal/config"
	entities "github.com/sheetforge/sheet-api/internal/entities/sheet"
	"github.com/sheetforge/sheet-api/internal/errors"
	"github.com/sheetforge/sheet-api/internal/pkg/idgen"
	characterrepo "github.com/sheetforge/sheet-api/internal/repositories/character"
	sheetsvc "github.com/sheetforge/sheet-api/internal/services/sheet"
)

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	ConfigManager *config.Manager
	CharacterRepo characterrepo.Repository
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ConfigManager == nil {
		vb.RequiredField("ConfigManager")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the sheet.Service interface
type Orchestrator struct {
	configManager *config.Manager
	characterRepo characterrepo.Repository
	idGenerator   idgen.Generator
}

// New creates a new sheet orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		configManager: cfg.ConfigManager,
		characterRepo: cfg.CharacterRepo,
		idGenerator:   cfg.IDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ sheetsvc.Service = (*Orchestrator)(nil)

// Configuration methods

// LoadConfiguration resolves the configuration, loading it on first use.
// Validation failures are reported in the output, not as an error: the
// accumulated list is part of the normal response.
func (o *Orchestrator) LoadConfiguration(ctx context.Context, input *sheetsvc.LoadConfigurationInput) (*sheetsvc.LoadConfigurationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resolved, validationErrs := o.configManager.LoadAll(ctx)
	return &sheetsvc.LoadConfigurationOutput{
		Configuration: resolved,
		Errors:        validationErrs,
	}, nil
}

// ReloadConfiguration discards any cached configuration and loads fresh
func (o *Orchestrator) ReloadConfiguration(ctx context.Context, input *sheetsvc.ReloadConfigurationInput) (*sheetsvc.ReloadConfigurationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.configManager.Reset()
	resolved, validationErrs := o.configManager.LoadAll(ctx)
	return &sheetsvc.ReloadConfigurationOutput{
		Configuration: resolved,
		Errors:        validationErrs,
	}, nil
}

// Character lifecycle methods

// CreateCharacter creates a new character populated with configuration defaults
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *sheetsvc.CreateCharacterInput) (*sheetsvc.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	resolved, err := o.configManager.GetConfiguration()
	if err != nil {
		return nil, err
	}

	record := entities.NewCharacterRecord(o.idGenerator.Generate())
	record.Name = input.Name
	record = charsync.Sync(record, resolved)

	createOutput, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Record: record})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character created",
		"character_id", createOutput.Record.ID,
		"name", createOutput.Record.Name)

	return &sheetsvc.CreateCharacterOutput{Record: createOutput.Record}, nil
}

// GetCharacter retrieves a character, reconciling it against the current
// configuration first. A record drifted from the configuration is repaired
// and persisted before being returned.
func (o *Orchestrator) GetCharacter(ctx context.Context, input *sheetsvc.GetCharacterInput) (*sheetsvc.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record, _, err := o.loadSynced(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &sheetsvc.GetCharacterOutput{Record: record}, nil
}

// ListCharacters retrieves all character records. Records are returned as
// stored; reconciliation happens on individual reads and edits.
func (o *Orchestrator) ListCharacters(ctx context.Context, input *sheetsvc.ListCharactersInput) (*sheetsvc.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listOutput, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, err
	}

	return &sheetsvc.ListCharactersOutput{Records: listOutput.Records}, nil
}

// DeleteCharacter removes a character record
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *sheetsvc.DeleteCharacterInput) (*sheetsvc.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, err
	}

	return &sheetsvc.DeleteCharacterOutput{}, nil
}

// Field edit methods

// UpdateAttribute sets an attribute value after checking it against the
// attribute's numeric schema. Inventory slot counts derive from attributes,
// so the record is re-reconciled before being persisted.
func (o *Orchestrator) UpdateAttribute(ctx context.Context, input *sheetsvc.UpdateAttributeInput) (*sheetsvc.UpdateAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record, resolved, err := o.loadRecord(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	def := resolved.AttributeByID(input.AttributeID)
	if def == nil {
		return nil, errors.NotFoundf("attribute %q is not defined", input.AttributeID)
	}

	if !def.Schema.Accepts(input.Value, nil) {
		lo, hi := def.Schema.EffectiveBounds(nil)
		return nil, errors.OutOfRangef("value %v for %q is outside [%v, %v] or violates its schema",
			input.Value, input.AttributeID, lo, hi)
	}

	record.Attributes[input.AttributeID] = input.Value
	record = charsync.Sync(record, resolved)

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Record: record})
	if err != nil {
		return nil, err
	}

	return &sheetsvc.UpdateAttributeOutput{Record: updated.Record}, nil
}

// UpdateCombatStat sets a combat stat value. For the current half of a
// paired stat the sibling maximum's stored value serves as the dynamic cap.
// Lowering a pair's maximum clamps its current down to the new cap.
func (o *Orchestrator) UpdateCombatStat(ctx context.Context, input *sheetsvc.UpdateCombatStatInput) (*sheetsvc.UpdateCombatStatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record, resolved, err := o.loadRecord(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	def, entry := resolved.CombatStatByID(input.StatID)
	if def == nil {
		return nil, errors.NotFoundf("combat stat %q is not defined", input.StatID)
	}

	var dynamicCap *float64
	if entry.Pair != nil && def.ID == entry.Pair.Current.ID {
		if maxValue, ok := record.CombatStats[entry.Pair.Maximum.ID]; ok {
			dynamicCap = &maxValue
		}
	}

	if !def.Schema.Accepts(input.Value, dynamicCap) {
		lo, hi := def.Schema.EffectiveBounds(dynamicCap)
		return nil, errors.OutOfRangef("value %v for %q is outside [%v, %v] or violates its schema",
			input.Value, input.StatID, lo, hi)
	}

	record.CombatStats[input.StatID] = input.Value

	if entry.Pair != nil && def.ID == entry.Pair.Maximum.ID {
		currentID := entry.Pair.Current.ID
		if current, ok := record.CombatStats[currentID]; ok && current > input.Value {
			record.CombatStats[currentID] = input.Value
		}
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Record: record})
	if err != nil {
		return nil, err
	}

	return &sheetsvc.UpdateCombatStatOutput{Record: updated.Record}, nil
}

// UpdateInfoField sets a character info field. Enum-backed fields only
// accept values from the referenced enumeration; required fields reject
// the empty string.
func (o *Orchestrator) UpdateInfoField(ctx context.Context, input *sheetsvc.UpdateInfoFieldInput) (*sheetsvc.UpdateInfoFieldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record, resolved, err := o.loadRecord(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	field := resolved.InfoFieldByID(input.FieldID)
	if field == nil {
		return nil, errors.NotFoundf("info field %q is not defined", input.FieldID)
	}

	if input.Value == "" {
		if field.Required {
			return nil, errors.InvalidArgumentf("field %q is required", input.FieldID)
		}
	} else if field.Kind == entities.InfoFieldEnum {
		enum, ok := resolved.Enum(field.EnumRef)
		if !ok || !enum.HasValue(input.Value) {
			return nil, errors.InvalidArgumentf("%q is not a value of enum %q", input.Value, field.EnumRef)
		}
	}

	record.CharacterInfo[input.FieldID] = input.Value

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Record: record})
	if err != nil {
		return nil, err
	}

	return &sheetsvc.UpdateInfoFieldOutput{Record: updated.Record}, nil
}

// UpdateInventorySlot sets one inventory slot to an item from the tab's
// catalog. An empty item name clears the slot to the catalog's first entry.
func (o *Orchestrator) UpdateInventorySlot(ctx context.Context, input *sheetsvc.UpdateInventorySlotInput) (*sheetsvc.UpdateInventorySlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record, resolved, err := o.loadRecord(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	tab := resolved.InventoryTabByID(input.TabID)
	if tab == nil {
		return nil, errors.NotFoundf("inventory tab %q is not defined", input.TabID)
	}

	slots := record.InventorySlots[tab.ID]
	if input.SlotIndex < 0 || input.SlotIndex >= len(slots) {
		return nil, errors.OutOfRangef("slot index %d is outside [0, %d) for tab %q",
			input.SlotIndex, len(slots), tab.ID)
	}

	enum, ok := resolved.Enum(tab.EnumRef)
	if !ok {
		return nil, errors.Internalf("tab %q references unknown enum %q", tab.ID, tab.EnumRef)
	}

	item := input.ItemName
	if item == "" {
		item = enum.FirstValue()
	} else if !enum.HasValue(item) {
		return nil, errors.InvalidArgumentf("%q is not a value of enum %q", item, tab.EnumRef)
	}

	slots[input.SlotIndex] = item

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Record: record})
	if err != nil {
		return nil, err
	}

	return &sheetsvc.UpdateInventorySlotOutput{Record: updated.Record}, nil
}

// SetLevel records a class level. The class must come from the level/class
// catalog enumeration and the level must fall within the configured bounds.
// Level zero removes the class entry.
func (o *Orchestrator) SetLevel(ctx context.Context, input *sheetsvc.SetLevelInput) (*sheetsvc.SetLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("className", input.ClassName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record, resolved, err := o.loadRecord(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	levelClass := resolved.LevelClass
	enum, ok := resolved.Enum(levelClass.EnumRef)
	if !ok || !enum.HasValue(input.ClassName) {
		return nil, errors.InvalidArgumentf("%q is not a value of enum %q", input.ClassName, levelClass.EnumRef)
	}

	if input.Level == 0 {
		delete(record.Level, input.ClassName)
	} else {
		if input.Level < levelClass.Levels.Min || input.Level > levelClass.Levels.Max {
			return nil, errors.OutOfRangef("level %d for %q is outside [%d, %d]",
				input.Level, input.ClassName, levelClass.Levels.Min, levelClass.Levels.Max)
		}
		record.Level[input.ClassName] = input.Level
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Record: record})
	if err != nil {
		return nil, err
	}

	return &sheetsvc.SetLevelOutput{Record: updated.Record}, nil
}

// loadRecord fetches a record and the loaded configuration, reconciling
// the record in memory when it has drifted. The caller persists it.
func (o *Orchestrator) loadRecord(ctx context.Context, characterID string) (*entities.CharacterRecord, *entities.ResolvedConfiguration, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", characterID, vb)
	if err := vb.Build(); err != nil {
		return nil, nil, err
	}

	resolved, err := o.configManager.GetConfiguration()
	if err != nil {
		return nil, nil, err
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, nil, err
	}

	record := getOutput.Record
	if charsync.NeedsSync(record, resolved) {
		record = charsync.Sync(record, resolved)
	}
	return record, resolved, nil
}

// loadSynced is loadRecord plus persistence of any repair, for read paths
// that return the record without a subsequent update of their own.
func (o *Orchestrator) loadSynced(ctx context.Context, characterID string) (*entities.CharacterRecord, *entities.ResolvedConfiguration, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", characterID, vb)
	if err := vb.Build(); err != nil {
		return nil, nil, err
	}

	resolved, err := o.configManager.GetConfiguration()
	if err != nil {
		return nil, nil, err
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, nil, err
	}

	record := getOutput.Record
	if !charsync.NeedsSync(record, resolved) {
		return record, resolved, nil
	}

	record = charsync.Sync(record, resolved)
	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Record: record})
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "character reconciled with configuration",
		"character_id", characterID)

	return updated.Record, resolved, nil
}
