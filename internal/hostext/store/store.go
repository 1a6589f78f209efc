// Package store exposes a modernc.org/sqlite-backed key/value table as a
// USER-kind runtime value with `persist`/`restore`/`close` methods, the
// sqlite home SPEC_FULL.md's DOMAIN STACK section assigns: a single table of
// (key TEXT PRIMARY KEY, value TEXT) pairs, values stored as ember.Repr of
// the boxed Value. restore hands that repr string back as a str; it does
// not parse it back into the original Value.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	ember "github.com/emberlang/ember/internal/runtime"
)

var userInfo = &ember.UserInfo{
	TypeName: "KVStore",
	Methods: []ember.UserMethod{
		{Name: "persist", Arity: ember.UserMethod2Arg, Fn2: persistMethod},
		{Name: "restore", Arity: ember.UserMethod2Arg, Fn2: restoreMethod},
		{Name: "close", Arity: ember.UserMethod1Arg, Fn1: closeMethod},
	},
	Print: printStore,
}

// KVStore is the USER payload: an open sqlite connection to path.
type KVStore struct {
	DB   *sql.DB
	Path string
}

// Open opens (creating if needed) a sqlite-backed key/value store at path.
func Open(path string) (*ember.User, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	u := &ember.User{Info: userInfo}
	u.Extra[0] = &KVStore{DB: db, Path: path}
	return u, nil
}

func storeOf(self *ember.User) (*KVStore, bool) {
	s, ok := self.Extra[0].(*KVStore)
	return s, ok
}

// persistMethod implements store.persist((key, value)): key must be a str,
// value is encoded with ember.Repr.
func persistMethod(self *ember.User, arg ember.Value) (ember.Value, error) {
	s, ok := storeOf(self)
	if !ok {
		return nil, fmt.Errorf("store: persist() on a non-KVStore receiver")
	}
	pair, ok := arg.(*ember.Tuple)
	if !ok || len(pair.Items) != 2 {
		return nil, fmt.Errorf("store: persist() expects a (key, value) tuple")
	}
	key, ok := pair.Items[0].(*ember.Str)
	if !ok {
		return nil, fmt.Errorf("store: persist() key must be a str")
	}
	encoded := ember.Repr(pair.Items[1])
	_, err := s.DB.Exec(
		`INSERT INTO kv(key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key.GoString(), encoded,
	)
	if err != nil {
		return nil, fmt.Errorf("store: persist: %w", err)
	}
	return ember.None, nil
}

// restoreMethod implements store.restore(key) -> raw repr string, or None
// on a miss. Re-parsing the repr back into a Value is left to the script
// (via whatever literal-eval the embedding host provides); this extension's
// job is to exercise the sqlite round trip, not duplicate the parser.
func restoreMethod(self *ember.User, arg ember.Value) (ember.Value, error) {
	s, ok := storeOf(self)
	if !ok {
		return nil, fmt.Errorf("store: restore() on a non-KVStore receiver")
	}
	key, ok := arg.(*ember.Str)
	if !ok {
		return nil, fmt.Errorf("store: restore() key must be a str")
	}
	var value string
	err := s.DB.QueryRow(`SELECT value FROM kv WHERE key = ?`, key.GoString()).Scan(&value)
	if err == sql.ErrNoRows {
		return ember.None, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: restore: %w", err)
	}
	return ember.NewStr(value), nil
}

func closeMethod(self *ember.User) (ember.Value, error) {
	s, ok := storeOf(self)
	if !ok || s.DB == nil {
		return ember.None, nil
	}
	err := s.DB.Close()
	s.DB = nil
	if err != nil {
		return nil, fmt.Errorf("store: close: %w", err)
	}
	return ember.None, nil
}

func printStore(extra [2]any) string {
	s, ok := extra[0].(*KVStore)
	if !ok || s.DB == nil {
		return "<KVStore closed>"
	}
	return fmt.Sprintf("<KVStore %s>", s.Path)
}
