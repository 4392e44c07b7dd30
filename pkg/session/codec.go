package session

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
)

// Codec serializes session values to bytes for persistence. Only the value
// mapping crosses the codec; identifier and flags never reach storage.
type Codec interface {
	Encode(values map[string]any) ([]byte, error)
	Decode(data []byte) (map[string]any, error)
}

// GobCodec is the default codec: a compact binary encoding via encoding/gob.
// Basic value types (string, bool, ints, floats, []byte) work out of the box;
// custom types stored in sessions must be registered with gob.Register before
// the first save or load.
type GobCodec struct{}

func (GobCodec) Encode(values map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(values); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GobCodec) Decode(data []byte) (map[string]any, error) {
	values := make(map[string]any)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&values); err != nil {
		return nil, err
	}
	return values, nil
}

// JSONCodec stores sessions as JSON, trading the gob codec's type fidelity
// for human-readable session files. All numbers decode as float64.
type JSONCodec struct{}

func (JSONCodec) Encode(values map[string]any) ([]byte, error) {
	return json.Marshal(values)
}

func (JSONCodec) Decode(data []byte) (map[string]any, error) {
	values := make(map[string]any)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
