// Package config loads, validates, and cross-resolves the six sheet
// configuration documents into one immutable resolved configuration.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sheetforge/sheet-api/internal/documents"
	"github.com/sheetforge/sheet-api/internal/entities/sheet"
	"github.com/sheetforge/sheet-api/internal/errors"
)

// State is the manager's position in the load lifecycle
type State string

// Manager states
const (
	StateUnloaded State = "unloaded"
	StateLoading  State = "loading"
	StateLoaded   State = "loaded"
	StateFailed   State = "failed"
)

// Config holds the dependencies for the configuration manager
type Config struct {
	Fetcher documents.Fetcher
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Fetcher == nil {
		return errors.InvalidArgument("fetcher cannot be nil")
	}
	return nil
}

// Manager orchestrates document loading. LoadAll is memoizing: a successful
// resolution is cached until Reset, and concurrent callers share a single
// in-flight load rather than issuing redundant fetches.
type Manager struct {
	fetcher documents.Fetcher

	mu       sync.Mutex
	state    State
	resolved *sheet.ResolvedConfiguration
	inflight *loadOperation
}

type loadOperation struct {
	done     chan struct{}
	resolved *sheet.ResolvedConfiguration
	errs     []ValidationError
}

// NewManager creates a configuration manager
func NewManager(cfg *Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Manager{
		fetcher: cfg.Fetcher,
		state:   StateUnloaded,
	}, nil
}

// State reports the current lifecycle state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// LoadAll resolves the full configuration. On success the result is cached
// and returned for every subsequent call until Reset. On failure it returns
// the complete accumulated error list and caches nothing, so the caller
// sees every problem at once and a later call retries.
func (m *Manager) LoadAll(ctx context.Context) (*sheet.ResolvedConfiguration, []ValidationError) {
	m.mu.Lock()
	if m.resolved != nil {
		resolved := m.resolved
		m.mu.Unlock()
		return resolved, nil
	}
	if m.inflight != nil {
		op := m.inflight
		m.mu.Unlock()
		<-op.done
		return op.resolved, op.errs
	}
	op := &loadOperation{done: make(chan struct{})}
	m.inflight = op
	m.state = StateLoading
	m.mu.Unlock()

	op.resolved, op.errs = m.resolve(ctx)

	m.mu.Lock()
	// A Reset during the load discards this generation's result
	if m.inflight == op {
		m.inflight = nil
		if op.resolved != nil {
			m.resolved = op.resolved
			m.state = StateLoaded
		} else {
			m.state = StateFailed
		}
	}
	m.mu.Unlock()
	close(op.done)

	return op.resolved, op.errs
}

// Reset clears the cached configuration so the next LoadAll re-fetches.
// Used for explicit reload actions and test isolation; there is no
// automatic hot-reload.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved = nil
	m.inflight = nil
	m.state = StateUnloaded
}

// GetConfiguration returns the cached resolved configuration.
// Returns errors.FailedPrecondition before a successful load.
func (m *Manager) GetConfiguration() (*sheet.ResolvedConfiguration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resolved == nil {
		return nil, errors.FailedPrecondition("configuration has not been loaded")
	}
	return m.resolved, nil
}

// GetEnum looks up an enumeration in the cached configuration.
// Returns errors.FailedPrecondition before a successful load and
// errors.NotFound for an unknown ID.
func (m *Manager) GetEnum(id string) (*sheet.EnumDefinition, error) {
	resolved, err := m.GetConfiguration()
	if err != nil {
		return nil, err
	}
	e, ok := resolved.Enum(id)
	if !ok {
		return nil, errors.NotFoundf("enum %q not found", id)
	}
	return e, nil
}

// resolve performs one full load generation: fetch and validate each
// document independently, then cross-reference and uniqueness checks over
// whatever validated. All errors accumulate; nothing short-circuits.
func (m *Manager) resolve(ctx context.Context) (*sheet.ResolvedConfiguration, []ValidationError) {
	var errs []ValidationError

	enums := fetchAndValidate(ctx, m.fetcher, documents.NameEnums, &errs, validateEnums)
	attributes := fetchAndValidate(ctx, m.fetcher, documents.NameAttributes, &errs, validateAttributes)
	combatStats := fetchAndValidate(ctx, m.fetcher, documents.NameCombatStats, &errs, validateCombatStats)
	characterInfo := fetchAndValidate(ctx, m.fetcher, documents.NameCharacterInfo, &errs, validateCharacterInfo)
	inventory := fetchAndValidate(ctx, m.fetcher, documents.NameInventory, &errs, validateInventory)
	levelClass := fetchAndValidate(ctx, m.fetcher, documents.NameLevelClass, &errs, validateLevelClass)

	if enums != nil {
		index := make(map[string]bool, len(enums))
		for _, e := range enums {
			index[e.ID] = true
		}
		errs = append(errs, checkEnumRefs(index, characterInfo, inventory, levelClass)...)
	}

	errs = append(errs, checkGlobalUniqueness(enums, attributes, characterInfo, combatStats, inventory)...)

	if len(errs) > 0 {
		slog.Warn("configuration failed to resolve", "error_count", len(errs))
		return nil, errs
	}

	slog.Info("configuration resolved",
		"enums", len(enums),
		"attributes", len(attributes.Attributes),
		"combat_stats", len(combatStats.Stats),
		"info_fields", len(characterInfo.Fields),
		"inventory_tabs", len(inventory.Tabs))
	return sheet.NewResolvedConfiguration(enums, attributes, combatStats, characterInfo, inventory, levelClass), nil
}

// fetchAndValidate retrieves one document and runs its validator. Fetch
// failures become document-level errors with an empty path. A nil return
// means the document cannot contribute to the cross-document checks.
func fetchAndValidate[T any](
	ctx context.Context,
	fetcher documents.Fetcher,
	name string,
	errs *[]ValidationError,
	validate func([]byte) (T, []ValidationError),
) T {
	var zero T

	raw, err := fetcher.Fetch(ctx, name)
	if err != nil {
		*errs = append(*errs, ValidationError{name, "", errors.GetMessage(err)})
		return zero
	}

	doc, docErrs := validate(raw)
	if len(docErrs) > 0 {
		*errs = append(*errs, docErrs...)
		return zero
	}
	return doc
}

// checkEnumRefs verifies that every enum reference in the documents that
// validated resolves to a loaded enumeration ID.
func checkEnumRefs(
	enumIDs map[string]bool,
	characterInfo *sheet.CharacterInfoConfig,
	inventory *sheet.InventoryConfig,
	levelClass *sheet.LevelClassConfig,
) []ValidationError {
	var errs []ValidationError

	missing := func(id string) string {
		return fmt.Sprintf("referenced enum '%s' not found", id)
	}

	if characterInfo != nil {
		for i, field := range characterInfo.Fields {
			if field.Kind == sheet.InfoFieldEnum && !enumIDs[field.EnumRef] {
				errs = append(errs, ValidationError{documents.NameCharacterInfo,
					fmt.Sprintf("fields.%d.enumRef", i), missing(field.EnumRef)})
			}
		}
	}
	if inventory != nil {
		for i, tab := range inventory.Tabs {
			if !enumIDs[tab.EnumRef] {
				errs = append(errs, ValidationError{documents.NameInventory,
					fmt.Sprintf("tabs.%d.enumRef", i), missing(tab.EnumRef)})
			}
		}
	}
	if levelClass != nil && !enumIDs[levelClass.EnumRef] {
		errs = append(errs, ValidationError{documents.NameLevelClass,
			"enumRef", missing(levelClass.EnumRef)})
	}
	return errs
}

// idClaim records which document and path first claimed an ID
type idClaim struct {
	document string
	path     string
}

// checkGlobalUniqueness enforces that no ID is claimed twice across
// enumerations, attributes, info fields, combat stats (pairs flattened),
// and inventory tabs. These namespaces are used interchangeably as lookup
// keys, so a collision would make lookups ambiguous. Documents that failed
// their own validation are excluded: their IDs are not trustworthy.
func checkGlobalUniqueness(
	enums []sheet.EnumDefinition,
	attributes *sheet.AttributesConfig,
	characterInfo *sheet.CharacterInfoConfig,
	combatStats *sheet.CombatStatsConfig,
	inventory *sheet.InventoryConfig,
) []ValidationError {
	var errs []ValidationError
	claims := map[string]idClaim{}

	claim := func(id, document, path string) {
		if prev, taken := claims[id]; taken {
			errs = append(errs, ValidationError{document, path,
				fmt.Sprintf("duplicate ID %q: already claimed by %s at %s", id, prev.document, prev.path)})
			return
		}
		claims[id] = idClaim{document: document, path: path}
	}

	for i, e := range enums {
		claim(e.ID, documents.NameEnums, fmt.Sprintf("enums.%d.id", i))
	}
	if attributes != nil {
		for i, a := range attributes.Attributes {
			claim(a.ID, documents.NameAttributes, fmt.Sprintf("attributes.%d.id", i))
		}
	}
	if characterInfo != nil {
		for i, field := range characterInfo.Fields {
			claim(field.ID, documents.NameCharacterInfo, fmt.Sprintf("fields.%d.id", i))
		}
	}
	if combatStats != nil {
		for i, entry := range combatStats.Stats {
			for j, def := range entry.Definitions() {
				path := fmt.Sprintf("stats.%d.id", i)
				if entry.Pair != nil {
					path = fmt.Sprintf("stats.%d.%d.id", i, j)
				}
				claim(def.ID, documents.NameCombatStats, path)
			}
		}
	}
	if inventory != nil {
		for i, tab := range inventory.Tabs {
			claim(tab.ID, documents.NameInventory, fmt.Sprintf("tabs.%d.id", i))
		}
	}
	return errs
}
