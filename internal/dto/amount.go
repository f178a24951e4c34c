package dto

import (
	"bytes"
	"encoding/json"
)

// RawAmount is a tender amount exactly as the cashier typed it. JSON strings and numbers
// are both accepted; interpretation is left to the reconciliation engine.
type RawAmount string

func (a *RawAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = RawAmount(n.String())
	return nil
}
