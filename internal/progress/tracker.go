// Package progress tracks which items of a collection the user has marked
// complete. Storage failures never reach the caller: reads degrade to an
// empty set and writes become no-ops.
package progress

import (
	"context"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/ziadkadry99/learnsite/internal/kv"
	"github.com/ziadkadry99/learnsite/internal/logger"
)

// KeyPrefix namespaces completion sets per collection.
const KeyPrefix = "completed:"

// Key returns the persisted key for a collection's completion set.
func Key(collectionID string) string {
	return KeyPrefix + collectionID
}

// Set is a set of completed item identifiers.
type Set map[string]struct{}

// NewSet builds a Set from ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in sorted order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// keyLocks serializes read-modify-write cycles on the same store key within
// the process. Requests are served concurrently, so two toggles on one
// collection would otherwise overwrite each other's sets.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyLocks) lock(key string) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()
	l.Lock()
	return l.Unlock
}

var toggles = &keyLocks{locks: make(map[string]*sync.Mutex)}

// Tracker reads and writes one collection's completion set.
type Tracker struct {
	store kv.Store
	key   string
	log   *logger.Logger
}

// NewTracker creates a Tracker for collectionID. A nil logger discards.
func NewTracker(store kv.Store, collectionID string, log *logger.Logger) *Tracker {
	if log == nil {
		log = logger.Nop()
	}
	return &Tracker{
		store: store,
		key:   Key(collectionID),
		log:   log.With("key", Key(collectionID)),
	}
}

// Set returns the persisted completion set, or an empty set if it cannot be read.
func (t *Tracker) Set(ctx context.Context) Set {
	raw, ok, err := t.store.Get(ctx, t.key)
	if err != nil {
		t.log.Debug("completion set unreadable", "error", err)
		return Set{}
	}
	if !ok || raw == "" {
		return Set{}
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		t.log.Debug("completion set corrupt", "error", err)
		return Set{}
	}
	return NewSet(ids...)
}

// IsComplete reports whether id is marked complete.
func (t *Tracker) IsComplete(ctx context.Context, id string) bool {
	return t.Set(ctx).Has(id)
}

// Toggle flips id's membership and returns the new state. The new state is
// returned even when it could not be persisted.
func (t *Tracker) Toggle(ctx context.Context, id string) bool {
	defer toggles.lock(t.key)()

	set := t.Set(ctx)
	done := !set.Has(id)
	if done {
		set[id] = struct{}{}
	} else {
		delete(set, id)
	}
	t.save(ctx, set)
	return done
}

func (t *Tracker) save(ctx context.Context, set Set) {
	data, err := json.Marshal(set.IDs())
	if err != nil {
		t.log.Debug("encoding completion set", "error", err)
		return
	}
	if err := t.store.Set(ctx, t.key, string(data)); err != nil {
		t.log.Debug("completion set not persisted", "error", err)
	}
}
