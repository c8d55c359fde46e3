package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB opens an in-memory database closed at the end of the test.
func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory(zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestKV_getSet(t *testing.T) {
	ctx := context.Background()
	kv := openTestDB(t).KV()

	_, err := kv.GetRaw(ctx, KeyContribution)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, KeyContribution, 1500.5))
	var c float64
	require.NoError(t, kv.Get(ctx, KeyContribution, &c))
	assert.Equal(t, 1500.5, c)

	require.NoError(t, kv.Set(ctx, KeyContribution, 10))
	require.NoError(t, kv.Get(ctx, KeyContribution, &c))
	assert.Equal(t, 10.0, c)
}

func TestKV_typeGuards(t *testing.T) {
	ctx := context.Background()
	kv := openTestDB(t).KV()

	tests := []struct {
		key string
		doc string
		ok  bool
	}{
		{KeyAssets, `[]`, true},
		{KeyAssets, `{"a":1}`, false},
		{KeyAssets, `null`, false},
		{KeyIdealAllocation, `{"Stocks":100}`, true},
		{KeyIdealAllocation, `[1]`, false},
		{KeyIdealAllocation, `null`, false},
		{KeyContribution, `-12.5`, true},
		{KeyContribution, `"12"`, false},
		{KeyContribution, `true`, false},
		{KeyContribution, `12,`, false},
	}
	for _, tt := range tests {
		t.Run(tt.key+" "+tt.doc, func(t *testing.T) {
			err := kv.SetRaw(ctx, tt.key, json.RawMessage(tt.doc))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidValue)
			}
		})
	}

	assert.ErrorIs(t, kv.Set(ctx, "theme", "dark"), ErrUnknownKey)
	_, err := kv.GetRaw(ctx, "theme")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestKV_deleteAndDump(t *testing.T) {
	ctx := context.Background()
	kv := openTestDB(t).KV()

	require.NoError(t, kv.Delete(ctx, KeyAssets))
	require.NoError(t, kv.Set(ctx, KeyAssets, []int{}))
	require.NoError(t, kv.Set(ctx, KeyContribution, 5))

	dump, err := kv.Dump(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]json.RawMessage{
		KeyAssets:       json.RawMessage(`[]`),
		KeyContribution: json.RawMessage(`5`),
	}, dump)

	require.NoError(t, kv.Delete(ctx, KeyAssets))
	_, err = kv.GetRaw(ctx, KeyAssets)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKV_canceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	kv := openTestDB(t).KV()
	assert.ErrorIs(t, kv.Set(ctx, KeyContribution, 1), context.Canceled)
}

func TestOpen_persists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.KV().Set(ctx, KeyContribution, 42))
	require.NoError(t, db.Close())

	db, err = Open(dir, zerolog.Nop())
	require.NoError(t, err)
	defer db.Close()
	var c float64
	require.NoError(t, db.KV().Get(ctx, KeyContribution, &c))
	assert.Equal(t, 42.0, c)
}

func TestKV_SetAll(t *testing.T) {
	ctx := context.Background()
	kv := openTestDB(t).KV()
	require.NoError(t, kv.Set(ctx, KeyContribution, 5))

	// one rejected document and nothing is saved
	err := kv.SetAll(ctx, map[string]json.RawMessage{
		KeyAssets:       json.RawMessage(`[]`),
		KeyContribution: json.RawMessage(`"7"`),
	})
	assert.ErrorIs(t, err, ErrInvalidValue)
	dump, err := kv.Dump(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]json.RawMessage{KeyContribution: json.RawMessage(`5`)}, dump)

	require.NoError(t, kv.SetAll(ctx, map[string]json.RawMessage{
		KeyAssets:       json.RawMessage(` [] `),
		KeyContribution: json.RawMessage(`7`),
	}))
	dump, err = kv.Dump(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]json.RawMessage{
		KeyAssets:       json.RawMessage(`[]`),
		KeyContribution: json.RawMessage(`7`),
	}, dump)

	require.NoError(t, kv.DeleteAll(ctx, Keys()...))
	dump, err = kv.Dump(ctx)
	require.NoError(t, err)
	assert.Empty(t, dump)
	assert.ErrorIs(t, kv.DeleteAll(ctx, KeyAssets, "theme"), ErrUnknownKey)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(KeyAssets, json.RawMessage(`[]`)))
	assert.ErrorIs(t, Validate(KeyAssets, json.RawMessage(`{}`)), ErrInvalidValue)
	assert.ErrorIs(t, Validate(KeyAssets, json.RawMessage(`[`)), ErrInvalidValue)
	assert.ErrorIs(t, Validate("theme", json.RawMessage(`"dark"`)), ErrUnknownKey)
}
