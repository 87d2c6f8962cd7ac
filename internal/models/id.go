package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is an opaque entity identifier assigned by the server.
//
// Some backends emit numeric ids (profiles) and string ids elsewhere, so ID
// accepts both JSON strings and JSON numbers and always encodes as a string.
type ID string

func (id ID) String() string { return string(id) }

// IsZero reports whether the id is empty or blank.
func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Entity is implemented by every record addressed by ID.
type Entity interface {
	EntityID() ID
}
