// Package character provides the interface for character record persistence
package character

import (
	"context"

	"github.com/sheetforge/sheet-api/internal/entities/sheet"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/sheetforge/sheet-api/internal/repositories/character Repository

// Repository defines the interface for character record persistence
type Repository interface {
	// Create creates a new character record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a record with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites an existing character record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves all character records
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a record
type CreateInput struct {
	Record *sheet.CharacterRecord
}

// CreateOutput defines the output for creating a record
type CreateOutput struct {
	Record *sheet.CharacterRecord
}

// GetInput defines the input for getting a record
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record *sheet.CharacterRecord
}

// UpdateInput defines the input for updating a record
type UpdateInput struct {
	Record *sheet.CharacterRecord
}

// UpdateOutput defines the output for updating a record
type UpdateOutput struct {
	Record *sheet.CharacterRecord
}

// DeleteInput defines the input for deleting a record
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a record
type DeleteOutput struct{}

// ListInput defines the input for listing records
type ListInput struct{}

// ListOutput defines the output for listing records
type ListOutput struct {
	Records []*sheet.CharacterRecord
}
