package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"
)

// Keys of the stored documents.
const (
	KeyAssets          = "assets"
	KeyIdealAllocation = "idealAllocation"
	KeyContribution    = "contribution"
)

var (
	// ErrNotFound is returned when a key, or a holding, does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidValue is returned when a value is not of the kind its key holds.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownKey is returned for keys other than the three known ones.
	ErrUnknownKey = errors.New("unknown key")
)

// guards check the JSON kind of the document stored under each key.
var guards = map[string]func(doc []byte) bool{
	KeyAssets:          func(doc []byte) bool { return kind(doc) == '[' },
	KeyIdealAllocation: func(doc []byte) bool { return kind(doc) == '{' },
	KeyContribution: func(doc []byte) bool {
		switch kind(doc) {
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return true
		}
		return false
	},
}

// Keys returns the known keys.
func Keys() []string {
	return []string{KeyAssets, KeyIdealAllocation, KeyContribution}
}

// kind returns the first byte of a JSON document, 0 if empty.
func kind(doc []byte) byte {
	doc = bytes.TrimSpace(doc)
	if len(doc) == 0 {
		return 0
	}
	return doc[0]
}

// entry is the record stored in badger for a key.
type entry struct {
	Key       string
	Value     []byte // JSON document
	UpdatedAt time.Time
}

// KV is a typed key-value layer: every key accepts a single JSON kind, an
// array for assets, an object for idealAllocation and a number for contribution.
type KV struct {
	db *DB
}

// KV returns the key-value layer of db.
func (db *DB) KV() *KV { return &KV{db: db} }

// GetRaw returns the JSON document stored under key.
func (kv *KV) GetRaw(ctx context.Context, key string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	guard, ok := guards[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	var e entry
	err := kv.db.store.Get(key, &e)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	if !json.Valid(e.Value) || !guard(e.Value) {
		return nil, fmt.Errorf("key %q: %w", key, ErrInvalidValue)
	}
	return e.Value, nil
}

// Get decodes the document stored under key into dst.
func (kv *KV) Get(ctx context.Context, key string, dst any) error {
	doc, err := kv.GetRaw(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(doc, dst); err != nil {
		return fmt.Errorf("key %q: %w: %v", key, ErrInvalidValue, err)
	}
	return nil
}

// Set stores value, encoded as JSON, under key.
func (kv *KV) Set(ctx context.Context, key string, value any) error {
	return kv.SetValues(ctx, map[string]any{key: value})
}

// Validate checks that doc can be stored under key: the key must be known and
// doc must be a JSON document of the kind the key holds.
func Validate(key string, doc json.RawMessage) error {
	guard, ok := guards[key]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	if !json.Valid(doc) || !guard(doc) {
		return fmt.Errorf("key %q: %w", key, ErrInvalidValue)
	}
	return nil
}

// SetRaw stores a JSON document under key. The document is rejected with
// ErrInvalidValue when it is not of the kind the key holds.
func (kv *KV) SetRaw(ctx context.Context, key string, doc json.RawMessage) error {
	return kv.SetAll(ctx, map[string]json.RawMessage{key: doc})
}

// SetAll stores every document of docs in a single transaction: either all
// of them are saved, or none is. Nothing is saved when a document is rejected.
func (kv *KV) SetAll(ctx context.Context, docs map[string]json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now()
	entries := make([]entry, 0, len(docs))
	for _, key := range slices.Sorted(maps.Keys(docs)) {
		if err := Validate(key, docs[key]); err != nil {
			if errors.Is(err, ErrInvalidValue) {
				kv.db.log.Warn().Str("key", key).Msg("rejected value of the wrong kind")
			}
			return err
		}
		entries = append(entries, entry{Key: key, Value: bytes.TrimSpace(docs[key]), UpdatedAt: now})
	}

	err := kv.db.store.Badger().Update(func(tx *badger.Txn) error {
		for i := range entries {
			if err := kv.db.store.TxUpsert(tx, entries[i].Key, &entries[i]); err != nil {
				return fmt.Errorf("key %q: %w", entries[i].Key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	for _, e := range entries {
		kv.db.log.Debug().Str("key", e.Key).Int("size", len(e.Value)).Msg("saved")
	}
	return nil
}

// SetValues encodes values as JSON and stores them with SetAll.
func (kv *KV) SetValues(ctx context.Context, values map[string]any) error {
	docs := make(map[string]json.RawMessage, len(values))
	for key, v := range values {
		doc, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("key %q: %w: %v", key, ErrInvalidValue, err)
		}
		docs[key] = doc
	}
	return kv.SetAll(ctx, docs)
}

// Delete removes key. Deleting a missing key is not an error.
func (kv *KV) Delete(ctx context.Context, key string) error {
	return kv.DeleteAll(ctx, key)
}

// DeleteAll removes every key in a single transaction. Missing keys are
// ignored.
func (kv *KV) DeleteAll(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, key := range keys {
		if _, ok := guards[key]; !ok {
			return fmt.Errorf("%w %q", ErrUnknownKey, key)
		}
	}
	err := kv.db.store.Badger().Update(func(tx *badger.Txn) error {
		for _, key := range keys {
			err := kv.db.store.TxDelete(tx, key, &entry{})
			if err != nil && !errors.Is(err, badgerhold.ErrNotFound) {
				return fmt.Errorf("key %q: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}
	return nil
}

// Dump returns every stored document by key, like a localStorage export.
// Documents of the wrong kind are skipped.
func (kv *KV) Dump(ctx context.Context) (map[string]json.RawMessage, error) {
	res := make(map[string]json.RawMessage)
	for _, key := range Keys() {
		doc, err := kv.GetRaw(ctx, key)
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidValue):
			continue
		case err != nil:
			return nil, err
		}
		res[key] = doc
	}
	return res, nil
}
