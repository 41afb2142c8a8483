package record

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec serializes CacheRecords for the fast store.
type Codec interface {
	Name() string
	Marshal(rec *CacheRecord) ([]byte, error)
	Unmarshal(data []byte) (*CacheRecord, error)
}

// CodecByName returns the codec registered under name ("json" or "msgpack").
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown record codec %q", name)
	}
}

// JSONCodec is the default textual encoding.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(rec *CacheRecord) ([]byte, error) {
	return json.Marshal(rec)
}

func (JSONCodec) Unmarshal(data []byte) (*CacheRecord, error) {
	var rec CacheRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode cache record: %w", err)
	}
	return &rec, nil
}

// MsgpackCodec is a compact binary encoding for large language sets.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string { return "msgpack" }

func (MsgpackCodec) Marshal(rec *CacheRecord) ([]byte, error) {
	return msgpack.Marshal(rec)
}

func (MsgpackCodec) Unmarshal(data []byte) (*CacheRecord, error) {
	var rec CacheRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode cache record: %w", err)
	}
	return &rec, nil
}
