package kvstore

import (
	"testing"

	"github.com/schoolkv/schoolkv/internal/cache"
)

func newLRUCache(t *testing.T, maxItems int) cache.Cache {
	t.Helper()
	c, err := cache.New(cache.PolicyLRU, maxItems)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	return c
}

func TestCachedStoreWriteThrough(t *testing.T) {
	backing := NewMemoryStore()
	store := NewCachedStore(backing, newLRUCache(t, 2))

	assertNoError(t, store.Set("a", []byte("1")), errSetValue)

	// Remove the key from the backing store directly; the cached copy
	// written by Set still serves reads.
	assertNoError(t, backing.Delete("a"), errDeleteKey)

	got, exists, err := store.Get("a")
	assertNoError(t, err, errGetValue)
	assertKeyExists(t, exists, true)
	if string(got) != "1" {
		t.Errorf("Got %q, want %q", string(got), "1")
	}
}

func TestCachedStoreMissFillsCache(t *testing.T) {
	backing := NewMemoryStore()
	assertNoError(t, backing.Set("a", []byte("1")), errSetValue)
	store := NewCachedStore(backing, newLRUCache(t, 2))

	// First read misses the cache and fills it from the backing store.
	_, exists, err := store.Get("a")
	assertNoError(t, err, errGetValue)
	assertKeyExists(t, exists, true)

	assertNoError(t, backing.Delete("a"), errDeleteKey)

	got, exists, err := store.Get("a")
	assertNoError(t, err, errGetValue)
	assertKeyExists(t, exists, true)
	if string(got) != "1" {
		t.Errorf("Got %q, want %q", string(got), "1")
	}
}

func TestCachedStoreDeleteInvalidates(t *testing.T) {
	backing := NewMemoryStore()
	store := NewCachedStore(backing, newLRUCache(t, 2))

	assertNoError(t, store.Set("a", []byte("1")), errSetValue)
	assertNoError(t, store.Delete("a"), errDeleteKey)

	_, exists, err := store.Get("a")
	assertNoError(t, err, errGetValue)
	assertKeyExists(t, exists, false)
}

func TestCachedStoreEviction(t *testing.T) {
	backing := NewMemoryStore()
	store := NewCachedStore(backing, newLRUCache(t, 2))

	assertNoError(t, store.Set("a", []byte("1")), errSetValue)
	assertNoError(t, store.Set("b", []byte("2")), errSetValue)
	assertNoError(t, store.Set("c", []byte("3")), errSetValue)

	// "a" was evicted from the cache, so once the backing store loses
	// it there is nowhere left to read it from.
	assertNoError(t, backing.Delete("a"), errDeleteKey)

	_, exists, err := store.Get("a")
	assertNoError(t, err, errGetValue)
	assertKeyExists(t, exists, false)

	// "c" is still cached.
	assertNoError(t, backing.Delete("c"), errDeleteKey)
	got, exists, err := store.Get("c")
	assertNoError(t, err, errGetValue)
	assertKeyExists(t, exists, true)
	if string(got) != "3" {
		t.Errorf("Got %q, want %q", string(got), "3")
	}
}
