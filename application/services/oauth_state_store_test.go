package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateStoreConsumeIsSingleUse(t *testing.T) {
	store := newOAuthStateStore(time.Minute)

	store.Put("state-1")

	assert.True(t, store.Consume("state-1"))
	assert.False(t, store.Consume("state-1"))
}

func TestStateStoreRejectsUnknownState(t *testing.T) {
	store := newOAuthStateStore(time.Minute)

	assert.False(t, store.Consume("never-issued"))
}

func TestStateStoreExpiresOldStates(t *testing.T) {
	store := newOAuthStateStore(time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Put("state-1")
	current = current.Add(2 * time.Minute)

	assert.False(t, store.Consume("state-1"))
}

func TestStateStorePrunesOnPut(t *testing.T) {
	store := newOAuthStateStore(time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Put("old-state")
	current = current.Add(2 * time.Minute)
	store.Put("new-state")

	store.mu.Lock()
	_, oldKept := store.issued["old-state"]
	store.mu.Unlock()

	assert.False(t, oldKept)
	assert.True(t, store.Consume("new-state"))
}
