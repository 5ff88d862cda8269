// Package iojson writes indented JSON for command line output.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the JSON shape written when a value cannot be encoded.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func jsonError(msg string, jsonErr error) string {
	// json.Marshal escapes both strings
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// WriteWith writes obj as indented JSON to w. If obj cannot be marshaled, a
// JSON Error object is written to ew instead.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, err = fmt.Fprintln(ew, jsonError("error marshaling in iojson.WriteWith", err))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
