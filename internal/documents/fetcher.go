// Package documents provides the fetch boundary for configuration
// documents: given a well-known name, retrieve raw JSON text or fail.
package documents

import (
	"context"
	"io/fs"

	"github.com/sheetforge/sheet-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_fetcher.go -package=documentsmock github.com/sheetforge/sheet-api/internal/documents Fetcher

// Well-known document names
const (
	NameEnums         = "enums"
	NameAttributes    = "attributes"
	NameCharacterInfo = "character-info"
	NameCombatStats   = "combat-stats"
	NameInventory     = "inventory"
	NameLevelClass    = "level-class"
)

// Fetcher retrieves one raw configuration document by name
type Fetcher interface {
	// Fetch returns the raw JSON bytes of the named document
	// Returns errors.NotFound if no document has that name
	// Returns errors.Unavailable for transport failures
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FileFetcher serves documents from a filesystem, mapping a document name
// to the file "<name>.json" in the root.
type FileFetcher struct {
	fsys fs.FS
}

// NewFileFetcher creates a fetcher over the given filesystem
func NewFileFetcher(fsys fs.FS) (*FileFetcher, error) {
	if fsys == nil {
		return nil, errors.InvalidArgument("fsys cannot be nil")
	}
	return &FileFetcher{fsys: fsys}, nil
}

// Fetch reads the named document file
func (f *FileFetcher) Fetch(_ context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.InvalidArgument("document name cannot be empty")
	}

	data, err := fs.ReadFile(f.fsys, name+".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("document %q not found", name)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read document "+name)
	}
	return data, nil
}
