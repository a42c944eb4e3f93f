package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_SessionsAreIsolated(t *testing.T) {
	svc := NewCartService()

	svc.Add("alice", "Margherita", "Medium", 30)
	svc.Add("bob", "Chicken Wrap", "Regular", 25)

	alice := svc.Get("alice")
	bob := svc.Get("bob")

	require.Len(t, alice.Items, 1)
	require.Len(t, bob.Items, 1)
	assert.Equal(t, "Margherita", alice.Items[0].Name)
	assert.Equal(t, "Chicken Wrap", bob.Items[0].Name)
}

func TestCartService_ViewCarriesTotals(t *testing.T) {
	svc := NewCartService()

	svc.Add("s1", "Margherita", "Medium", 30)
	view := svc.Add("s1", "Margherita", "Medium", 30)

	assert.Equal(t, 2, view.TotalQty)
	assert.Equal(t, 60.0, view.TotalPrice)
	require.Len(t, view.Items, 1)
}

func TestCartService_ClearEmptiesOnlyThatSession(t *testing.T) {
	svc := NewCartService()

	svc.Add("alice", "Margherita", "Medium", 30)
	svc.Add("bob", "Chicken Wrap", "Regular", 25)

	view := svc.Clear("alice")
	assert.Empty(t, view.Items)
	assert.Len(t, svc.Get("bob").Items, 1)
}

func TestCartService_CopyDoesNotAliasStore(t *testing.T) {
	svc := NewCartService()
	svc.Add("s1", "Margherita", "Medium", 30)

	cart := svc.Copy("s1")
	cart.Add("Chicken Wrap", "Regular", 25)

	assert.Len(t, svc.Get("s1").Items, 1)
}

func TestCartService_PruneIdle(t *testing.T) {
	svc := NewCartService()

	svc.Add("stale", "Margherita", "Medium", 30)
	svc.carts["stale"].touchedAt = time.Now().Add(-2 * time.Hour)
	svc.Add("active", "Chicken Wrap", "Regular", 25)

	removed := svc.PruneIdle(time.Hour)

	assert.Equal(t, 1, removed)
	assert.Empty(t, svc.Get("stale").Items)
	assert.Len(t, svc.Get("active").Items, 1)
}
