package sheet

import (
	"encoding/json"
	"fmt"
)

// EnumValue is one entry of an enumeration. On the wire it is either a bare
// name string or an object carrying a description and an open-ended payload.
// Name is the identity used everywhere lookups and uniqueness apply.
type EnumValue struct {
	Name        string
	Description string
	Data        map[string]interface{}
}

type enumValueObject struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// UnmarshalJSON accepts both the bare-string and the object form
func (v *EnumValue) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*v = EnumValue{Name: name}
		return nil
	}

	var obj enumValueObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("enum value must be a string or an object: %w", err)
	}
	*v = EnumValue{Name: obj.Name, Description: obj.Description, Data: obj.Data}
	return nil
}

// MarshalJSON writes the bare-string form when only a name is set
func (v EnumValue) MarshalJSON() ([]byte, error) {
	if v.Description == "" && v.Data == nil {
		return json.Marshal(v.Name)
	}
	return json.Marshal(enumValueObject{Name: v.Name, Description: v.Description, Data: v.Data})
}

// EnumDefinition is one enumeration: an ID in the global namespace, a
// display label, and an ordered list of values.
type EnumDefinition struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Description string      `json:"description,omitempty"`
	Values      []EnumValue `json:"values"`
}

// FirstValue returns the name of the first value, or "" for an empty list
func (e *EnumDefinition) FirstValue() string {
	if len(e.Values) == 0 {
		return ""
	}
	return e.Values[0].Name
}

// HasValue reports whether name is one of the enumeration's value names
func (e *EnumDefinition) HasValue(name string) bool {
	for _, v := range e.Values {
		if v.Name == name {
			return true
		}
	}
	return false
}
