package sheet

// RecordVersion is the current serialization version of CharacterRecord
const RecordVersion = 1

// CharacterRecord is the mutable user data reconciled against a
// ResolvedConfiguration. The per-category maps are open: their key sets are
// whatever the current configuration defines, so all access goes through
// the synchronizer and validators rather than fixed struct fields.
//
// Level and ResourceCounters are structurally independent of the
// configuration documents and are never touched by synchronization.
type CharacterRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version int    `json:"version"`

	Attributes       map[string]float64  `json:"attributes"`
	CombatStats      map[string]float64  `json:"combatStats"`
	CharacterInfo    map[string]string   `json:"characterInfo"`
	InventorySlots   map[string][]string `json:"inventorySlots"`
	Level            map[string]int      `json:"level"`
	ResourceCounters map[string]float64  `json:"resourceCounters"`

	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

// NewCharacterRecord creates an empty record ready for synchronization
func NewCharacterRecord(id string) *CharacterRecord {
	return &CharacterRecord{
		ID:               id,
		Version:          RecordVersion,
		Attributes:       make(map[string]float64),
		CombatStats:      make(map[string]float64),
		CharacterInfo:    make(map[string]string),
		InventorySlots:   make(map[string][]string),
		Level:            make(map[string]int),
		ResourceCounters: make(map[string]float64),
	}
}

// Clone returns a deep copy of the record
func (r *CharacterRecord) Clone() *CharacterRecord {
	out := &CharacterRecord{
		ID:               r.ID,
		Name:             r.Name,
		Version:          r.Version,
		Attributes:       make(map[string]float64, len(r.Attributes)),
		CombatStats:      make(map[string]float64, len(r.CombatStats)),
		CharacterInfo:    make(map[string]string, len(r.CharacterInfo)),
		InventorySlots:   make(map[string][]string, len(r.InventorySlots)),
		Level:            make(map[string]int, len(r.Level)),
		ResourceCounters: make(map[string]float64, len(r.ResourceCounters)),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	for k, v := range r.Attributes {
		out.Attributes[k] = v
	}
	for k, v := range r.CombatStats {
		out.CombatStats[k] = v
	}
	for k, v := range r.CharacterInfo {
		out.CharacterInfo[k] = v
	}
	for k, v := range r.InventorySlots {
		slots := make([]string, len(v))
		copy(slots, v)
		out.InventorySlots[k] = slots
	}
	for k, v := range r.Level {
		out.Level[k] = v
	}
	for k, v := range r.ResourceCounters {
		out.ResourceCounters[k] = v
	}
	return out
}

// ensureMaps replaces nil category maps with empty ones, so a record decoded
// from an older payload is always safe to synchronize.
func (r *CharacterRecord) ensureMaps() {
	if r.Attributes == nil {
		r.Attributes = make(map[string]float64)
	}
	if r.CombatStats == nil {
		r.CombatStats = make(map[string]float64)
	}
	if r.CharacterInfo == nil {
		r.CharacterInfo = make(map[string]string)
	}
	if r.InventorySlots == nil {
		r.InventorySlots = make(map[string][]string)
	}
	if r.Level == nil {
		r.Level = make(map[string]int)
	}
	if r.ResourceCounters == nil {
		r.ResourceCounters = make(map[string]float64)
	}
}
