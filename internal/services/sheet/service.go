// Package sheet defines the interface for character sheet operations
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/sheetforge/sheet-api/internal/services/sheet Service

import (
	"context"

	"github.com/sheetforge/sheet-api/internal/config"
	entities "github.com/sheetforge/sheet-api/internal/entities/sheet"
)

// Service defines the interface for character sheet operations
type Service interface {
	// Configuration
	LoadConfiguration(ctx context.Context, input *LoadConfigurationInput) (*LoadConfigurationOutput, error)
	ReloadConfiguration(ctx context.Context, input *ReloadConfigurationInput) (*ReloadConfigurationOutput, error)

	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Field-level edits
	UpdateAttribute(ctx context.Context, input *UpdateAttributeInput) (*UpdateAttributeOutput, error)
	UpdateCombatStat(ctx context.Context, input *UpdateCombatStatInput) (*UpdateCombatStatOutput, error)
	UpdateInfoField(ctx context.Context, input *UpdateInfoFieldInput) (*UpdateInfoFieldOutput, error)
	UpdateInventorySlot(ctx context.Context, input *UpdateInventorySlotInput) (*UpdateInventorySlotOutput, error)
	SetLevel(ctx context.Context, input *SetLevelInput) (*SetLevelOutput, error)
}

// Configuration types

// LoadConfigurationInput defines the request for loading configuration
type LoadConfigurationInput struct{}

// LoadConfigurationOutput carries the resolved configuration, or the full
// accumulated validation error list when resolution failed
type LoadConfigurationOutput struct {
	Configuration *entities.ResolvedConfiguration
	Errors        []config.ValidationError
}

// ReloadConfigurationInput defines the request for an explicit reload
type ReloadConfigurationInput struct{}

// ReloadConfigurationOutput mirrors LoadConfigurationOutput
type ReloadConfigurationOutput struct {
	Configuration *entities.ResolvedConfiguration
	Errors        []config.ValidationError
}

// Character lifecycle types

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Record *entities.CharacterRecord
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Record *entities.CharacterRecord
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Records []*entities.CharacterRecord
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// Field edit types

// UpdateAttributeInput defines the request for an attribute edit
type UpdateAttributeInput struct {
	CharacterID string
	AttributeID string
	Value       float64
}

// UpdateAttributeOutput defines the response for an attribute edit
type UpdateAttributeOutput struct {
	Record *entities.CharacterRecord
}

// UpdateCombatStatInput defines the request for a combat stat edit
type UpdateCombatStatInput struct {
	CharacterID string
	StatID      string
	Value       float64
}

// UpdateCombatStatOutput defines the response for a combat stat edit
type UpdateCombatStatOutput struct {
	Record *entities.CharacterRecord
}

// UpdateInfoFieldInput defines the request for an info field edit
type UpdateInfoFieldInput struct {
	CharacterID string
	FieldID     string
	Value       string
}

// UpdateInfoFieldOutput defines the response for an info field edit
type UpdateInfoFieldOutput struct {
	Record *entities.CharacterRecord
}

// UpdateInventorySlotInput defines the request for an inventory slot edit
type UpdateInventorySlotInput struct {
	CharacterID string
	TabID       string
	SlotIndex   int
	ItemName    string
}

// UpdateInventorySlotOutput defines the response for an inventory slot edit
type UpdateInventorySlotOutput struct {
	Record *entities.CharacterRecord
}

// SetLevelInput defines the request for setting a class level
type SetLevelInput struct {
	CharacterID string
	ClassName   string
	Level       int
}

// SetLevelOutput defines the response for setting a class level
type SetLevelOutput struct {
	Record *entities.CharacterRecord
}
