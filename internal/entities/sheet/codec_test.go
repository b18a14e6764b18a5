package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetforge/sheet-api/internal/entities/sheet"
)

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	record := sheet.NewCharacterRecord("char_1")
	record.Name = "Brakka"
	record.Attributes["STR"] = 14
	record.CombatStats["hp"] = 9
	record.CharacterInfo["species"] = "Orc"
	record.InventorySlots["backpack"] = []string{"Rope", "Torch"}
	record.Level["Fighter"] = 3
	record.ResourceCounters["rations"] = 5

	text, err := sheet.SerializeRecord(record)
	require.NoError(t, err)

	decoded, err := sheet.DeserializeRecord(text)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestSerializeRecord_Nil(t *testing.T) {
	_, err := sheet.SerializeRecord(nil)
	assert.Error(t, err)
}

func TestDeserializeRecord_FallbackAcceptsStaleShape(t *testing.T) {
	// attributes carries string values, which fails the strict decode, but
	// every required top-level key is present so the shape check accepts it
	text := `{
		"id": "char_2",
		"name": "Old Save",
		"version": 1,
		"attributes": {"STR": "not-a-number"},
		"combatStats": {"hp": 4},
		"characterInfo": {},
		"inventorySlots": {},
		"level": {},
		"resourceCounters": {}
	}`

	record, err := sheet.DeserializeRecord(text)
	require.NoError(t, err)
	assert.Equal(t, "char_2", record.ID)
	assert.Equal(t, "Old Save", record.Name)
	assert.Empty(t, record.Attributes, "unreadable category resets to empty")
	assert.Equal(t, 4.0, record.CombatStats["hp"], "readable categories survive")
}

func TestDeserializeRecord_RejectsMissingKeys(t *testing.T) {
	// combatStats absent: the payload does not even have the right shape
	text := `{
		"id": "char_3",
		"version": 1,
		"attributes": {"STR": "bad"},
		"characterInfo": {},
		"inventorySlots": {},
		"level": {},
		"resourceCounters": {}
	}`

	_, err := sheet.DeserializeRecord(text)
	assert.Error(t, err)
}

func TestDeserializeRecord_RejectsCleanDecodeMissingAllKeys(t *testing.T) {
	// Decodes strictly without error, but a bare ID is not a record: the
	// shape check gates the strict tier too
	_, err := sheet.DeserializeRecord(`{"id":"x"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required key")
}

func TestDeserializeRecord_RejectsStrictDecodeMissingOneKey(t *testing.T) {
	_, err := sheet.DeserializeRecord(`{
		"id":"char_6","version":1,
		"attributes":{},"combatStats":{},"characterInfo":{},
		"inventorySlots":{},"level":{}
	}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resourceCounters")
}

func TestDeserializeRecord_RejectsGarbage(t *testing.T) {
	_, err := sheet.DeserializeRecord("not json at all")
	assert.Error(t, err)
}

func TestDeserializeRecord_NilMapsRepaired(t *testing.T) {
	record, err := sheet.DeserializeRecord(`{
		"id":"char_4","version":1,
		"attributes":{},"combatStats":{},"characterInfo":{},
		"inventorySlots":{},"level":{},"resourceCounters":{}
	}`)
	require.NoError(t, err)
	require.NotNil(t, record.Attributes)
	record.Attributes["STR"] = 1
}

func TestClone_Independent(t *testing.T) {
	record := sheet.NewCharacterRecord("char_5")
	record.Attributes["STR"] = 10
	record.InventorySlots["bag"] = []string{"Rope"}

	clone := record.Clone()
	clone.Attributes["STR"] = 99
	clone.InventorySlots["bag"][0] = "Torch"

	assert.Equal(t, 10.0, record.Attributes["STR"])
	assert.Equal(t, "Rope", record.InventorySlots["bag"][0])
}
