package hashmap

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
)

var (
	jsonMarshal   func(v any) ([]byte, error)
	jsonUnmarshal func(data []byte, v any) error
)

// SetDefaultJSONMarshal sets the default JSON serialization and deserialization functions.
// If not set, the standard library is used by default.
func SetDefaultJSONMarshal(marshal func(v any) ([]byte, error), unmarshal func(data []byte, v any) error) {
	jsonMarshal, jsonUnmarshal = marshal, unmarshal
}

// MarshalJSON encodes the map as a JSON object.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	if jsonMarshal != nil {
		return jsonMarshal(m.ToMap())
	}
	return json.Marshal(m.ToMap())
}

// UnmarshalJSON stores every member of a JSON object into the map. The
// input must be plain JSON; see UnmarshalJSONC for commented input. On
// error the map is left unchanged.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	var a map[string]V
	if jsonUnmarshal != nil {
		if err := jsonUnmarshal(data, &a); err != nil {
			return err
		}
	} else {
		if err := json.Unmarshal(data, &a); err != nil {
			return errors.Wrap(err, "decode map")
		}
	}
	return m.FromMap(a)
}

// UnmarshalJSONC is UnmarshalJSON for JSON with comments and trailing
// commas.
func (m *Map[V]) UnmarshalJSONC(data []byte) error {
	return m.UnmarshalJSON(jsonc.ToJSON(data))
}
