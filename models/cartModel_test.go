package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd_MergesOnNameAndSize(t *testing.T) {
	cart := &Cart{}

	cart.Add("Margherita", "Medium", 30)
	cart.Add("Margherita", "Medium", 30)
	cart.Add("Margherita", "Large", 45)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "Large", cart.Items[1].Size)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCartAdd_PreservesInsertionOrder(t *testing.T) {
	cart := &Cart{}

	cart.Add("Chicken Wrap", "Regular", 25)
	cart.Add("Margherita", "Medium", 30)
	cart.Add("Chicken Wrap", "Regular", 25)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "Chicken Wrap", cart.Items[0].Name)
	assert.Equal(t, "Margherita", cart.Items[1].Name)
}

func TestCartDecrease_RemovesLineAtQuantityOne(t *testing.T) {
	cart := &Cart{}
	cart.Add("Margherita", "Medium", 30)
	cart.Add("Margherita", "Medium", 30)

	cart.Decrease(0)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart.Decrease(0)
	assert.Empty(t, cart.Items)
}

func TestCartMutations_OutOfBoundsAreNoOps(t *testing.T) {
	cart := &Cart{}
	cart.Add("Margherita", "Medium", 30)

	cart.Increase(5)
	cart.Decrease(-1)
	cart.Remove(1)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartTotals_RecomputedAfterEveryMutation(t *testing.T) {
	cart := &Cart{}

	cart.Add("Margherita", "Medium", 30)
	cart.Add("Chicken Wrap", "Regular", 25)
	cart.Increase(0)

	qty, price := cart.Totals()
	assert.Equal(t, 3, qty)
	assert.Equal(t, 85.0, price)

	cart.Remove(1)
	qty, price = cart.Totals()
	assert.Equal(t, 2, qty)
	assert.Equal(t, 60.0, price)
}

// Any sequence of mutations must keep (name, size) keys unique and
// totals equal to the sum over the lines.
func TestCart_InvariantsUnderMutationSequence(t *testing.T) {
	cart := &Cart{}

	ops := []func(){
		func() { cart.Add("Margherita", "Medium", 30) },
		func() { cart.Add("Margherita", "Large", 45) },
		func() { cart.Add("Chicken Wrap", "Regular", 25) },
		func() { cart.Increase(1) },
		func() { cart.Add("Margherita", "Medium", 30) },
		func() { cart.Decrease(0) },
		func() { cart.Remove(2) },
		func() { cart.Decrease(0) },
		func() { cart.Add("Beef Wrap", "Regular", 28) },
	}

	for i, op := range ops {
		op()

		seen := make(map[string]bool)
		sum := 0
		for _, item := range cart.Items {
			key := item.Name + "|" + item.Size
			require.Falsef(t, seen[key], "duplicate line for %s after op %d", key, i)
			seen[key] = true
			require.GreaterOrEqualf(t, item.Quantity, 1, "zero quantity stored after op %d", i)
			sum += item.Quantity
		}

		qty, _ := cart.Totals()
		require.Equalf(t, sum, qty, "total quantity mismatch after op %d", i)
	}
}

func TestCartSnapshot_IsIndependentCopy(t *testing.T) {
	cart := &Cart{}
	cart.Add("Margherita", "Medium", 30)

	snapshot := cart.Snapshot()
	cart.Increase(0)

	assert.Equal(t, 1, snapshot[0].Quantity)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}
