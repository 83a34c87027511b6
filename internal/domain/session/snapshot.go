package session

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func encodeSnapshot(s Session) ([]byte, error) {
	return json.Marshal(s)
}

// decodeSnapshot accepts exactly the Session shape: a JSON object of string
// fields with id, name and email present. Anything else is corrupt.
func decodeSnapshot(data []byte) (Session, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s Session
	if err := dec.Decode(&s); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if dec.More() {
		return Session{}, fmt.Errorf("%w: trailing data", ErrCorruptSnapshot)
	}
	if s.ID == "" || s.Name == "" || s.Email == "" {
		return Session{}, fmt.Errorf("%w: missing fields", ErrCorruptSnapshot)
	}

	return s, nil
}
