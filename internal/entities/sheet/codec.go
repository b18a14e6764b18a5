package sheet

import (
	"encoding/json"
	"log/slog"

	"github.com/sheetforge/sheet-api/internal/errors"
)

// requiredRecordKeys are the top-level keys a payload must carry to survive
// the permissive fallback. Their presence means the record has the right
// overall shape and the synchronizer can repair the rest on next load.
var requiredRecordKeys = []string{
	"attributes",
	"combatStats",
	"characterInfo",
	"inventorySlots",
	"resourceCounters",
	"level",
	"version",
}

// SerializeRecord renders a record to its textual persisted form
func SerializeRecord(r *CharacterRecord) (string, error) {
	if r == nil {
		return "", errors.InvalidArgument("record cannot be nil")
	}
	data, err := json.Marshal(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize record")
	}
	return string(data), nil
}

// DeserializeRecord parses a persisted record. Parsing is two-tier: a strict
// decode first, and on failure a shape check that accepts any payload whose
// top level carries all structurally required keys, regardless of inner
// shape. The fallback exists so records persisted under an older
// configuration survive a shape migration and get fixed up by the
// synchronizer instead of being rejected outright.
func DeserializeRecord(text string) (*CharacterRecord, error) {
	var record CharacterRecord
	strictErr := json.Unmarshal([]byte(text), &record)
	if strictErr == nil {
		// A decode that parses but lacks the structural keys is not a
		// record under any shape, old or new.
		if key, ok := missingRecordKey([]byte(text)); ok {
			return nil, errors.InvalidArgumentf("record payload missing required key %q", key)
		}
		record.ensureMaps()
		return &record, nil
	}

	fallback, ok := deserializeFallback(text)
	if !ok {
		return nil, errors.Wrap(strictErr, "failed to deserialize record")
	}

	slog.Warn("record failed strict deserialization, accepted by shape check",
		"record_id", fallback.ID,
		"error", strictErr.Error())
	return fallback, nil
}

// deserializeFallback decodes what it can field by field. A category whose
// inner shape no longer parses is reset to empty rather than failing the
// whole record.
func deserializeFallback(text string) (*CharacterRecord, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, false
	}
	if _, missing := missingRecordKey([]byte(text)); missing {
		return nil, false
	}

	record := NewCharacterRecord("")
	decodeField(raw, "id", &record.ID)
	decodeField(raw, "name", &record.Name)
	decodeField(raw, "version", &record.Version)
	decodeField(raw, "attributes", &record.Attributes)
	decodeField(raw, "combatStats", &record.CombatStats)
	decodeField(raw, "characterInfo", &record.CharacterInfo)
	decodeField(raw, "inventorySlots", &record.InventorySlots)
	decodeField(raw, "level", &record.Level)
	decodeField(raw, "resourceCounters", &record.ResourceCounters)
	decodeField(raw, "createdAt", &record.CreatedAt)
	decodeField(raw, "updatedAt", &record.UpdatedAt)
	record.ensureMaps()
	return record, true
}

// missingRecordKey reports the first required top-level key absent from the
// payload. A non-object payload counts as missing everything.
func missingRecordKey(data []byte) (string, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return requiredRecordKeys[0], true
	}
	for _, key := range requiredRecordKeys {
		if _, present := raw[key]; !present {
			return key, true
		}
	}
	return "", false
}

func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) {
	data, present := raw[key]
	if !present {
		return
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("dropping unreadable record field", "field", key, "error", err.Error())
		return
	}
	*dst = v
}
