// Package store persists the portfolio, its target allocation and the planned
// contribution in a local badger database.
//
// Values are kept as JSON documents under the three keys the browser version
// of the tracker used in localStorage, so that a localStorage dump can be
// imported as is.
package store

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/timshannon/badgerhold/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// DB manages the badger database connection
type DB struct {
	store *badgerhold.Store
	log   zerolog.Logger
}

// Open opens, or creates, the database in dir.
func Open(dir string, log zerolog.Logger) (*DB, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	log.Debug().Str("path", dir).Msg("opening database")

	options := defaultOptions(log)
	options.Dir = dir
	options.ValueDir = dir
	return open(options, log)
}

// OpenInMemory opens a database that lives in memory only.
func OpenInMemory(log zerolog.Logger) (*DB, error) {
	options := defaultOptions(log)
	options.Options = badger.DefaultOptions("").WithInMemory(true)
	options.Logger = badgerLogger{log}
	return open(options, log)
}

func defaultOptions(log zerolog.Logger) badgerhold.Options {
	options := badgerhold.DefaultOptions
	options.Encoder = msgpack.Marshal
	options.Decoder = msgpack.Unmarshal
	options.Logger = badgerLogger{log}
	return options
}

func open(options badgerhold.Options, log zerolog.Logger) (*DB, error) {
	s, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}
	return &DB{store: s, log: log}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.store != nil {
		return db.store.Close()
	}
	return nil
}

// badgerLogger sends badger messages to zerolog. Badger is chatty at info
// level, so info is downgraded to debug.
type badgerLogger struct{ log zerolog.Logger }

func (l badgerLogger) Errorf(format string, args ...any) {
	l.log.Error().Str("component", "badger").Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn().Str("component", "badger").Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.log.Debug().Str("component", "badger").Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.log.Debug().Str("component", "badger").Msgf(format, args...)
}
