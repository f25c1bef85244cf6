// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PhotoList is the list of photo identifiers attached to an inspection.
//
// The canonical wire form is a JSON array of strings. Older clients sent the
// same array JSON-encoded into a string ("[\"a\",\"b\"]"); UnmarshalJSON
// accepts both shapes and MarshalJSON always emits the array.
//
// In SQL the list is stored as JSON text.
type PhotoList []string

// MarshalJSON emits an empty array instead of null for a nil list.
func (p PhotoList) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(p))
}

// UnmarshalJSON accepts a JSON array, a JSON-encoded array inside a string,
// an empty string or null.
func (p *PhotoList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = PhotoList{}
		return nil
	}

	if b[0] == '"' {
		var encoded string
		if err := json.Unmarshal(b, &encoded); err != nil {
			return fmt.Errorf("invalid photo list: %w", err)
		}
		if encoded == "" {
			*p = PhotoList{}
			return nil
		}
		b = []byte(encoded)
	}

	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return fmt.Errorf("invalid photo list: %w", err)
	}

	*p = ids
	return nil
}

// Value implements driver.Valuer.
func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(p))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (p *PhotoList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = PhotoList{}
		return nil
	case string:
		return p.UnmarshalJSON([]byte(v))
	case []byte:
		return p.UnmarshalJSON(v)
	default:
		return fmt.Errorf("cannot scan %T into PhotoList", src)
	}
}
