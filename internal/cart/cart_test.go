package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/catalog"
)

var (
	headphones = catalog.Product{ID: "1", Name: "Premium Wireless Headphones", Price: 299.99}
	watch      = catalog.Product{ID: "2", Name: "Smart Fitness Watch", Price: 199.99}
	tshirt     = catalog.Product{ID: "3", Name: "Organic Cotton T-Shirt", Price: 29.99}
)

// recompute derives total and count directly from the lines, independent of
// the store's own accessors.
func recompute(lines []Line) (float64, int) {
	var total float64
	count := 0
	for _, l := range lines {
		total += l.Product.Price * float64(l.Quantity)
		count += l.Quantity
	}
	return total, count
}

func TestAddItem_SingleItem(t *testing.T) {
	s := NewStore()
	s.AddItem(headphones, 1)

	assert.Equal(t, 1, s.ItemCount())
	assert.InDelta(t, 299.99, s.Total(), 0.001)
}

func TestAddItem_ExistingLineIncrements(t *testing.T) {
	s := NewStore()
	s.AddItem(headphones, 1)
	s.AddItem(headphones, 2)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, s.ItemCount())
}

func TestAddItem_KeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.AddItem(watch, 1)
	s.AddItem(headphones, 1)
	s.AddItem(watch, 1) // increment must not reorder

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, watch.ID, lines[0].Product.ID)
	assert.Equal(t, headphones.ID, lines[1].Product.ID)
}

func TestAddItem_NonPositiveQuantityIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(headphones, 0)
	s.AddItem(headphones, -3)

	assert.Empty(t, s.Lines())
	assert.Zero(t, s.ItemCount())
}

func TestRemoveItem_AbsentIDLeavesCartUnchanged(t *testing.T) {
	s := NewStore()
	s.AddItem(headphones, 2)

	before := s.Lines()
	totalBefore := s.Total()

	s.RemoveItem("missing")

	assert.Equal(t, before, s.Lines())
	assert.Equal(t, totalBefore, s.Total())
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	s := NewStore()
	s.AddItem(headphones, 2)
	s.UpdateQuantity(headphones.ID, 0)

	// Same state as never having added the product.
	assert.Empty(t, s.Lines())
	assert.Zero(t, s.Total())
	assert.Zero(t, s.ItemCount())
}

func TestUpdateQuantity_ReplacesNotIncrements(t *testing.T) {
	s := NewStore()
	s.AddItem(headphones, 5)
	s.UpdateQuantity(headphones.ID, 2)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(headphones, 1)
	s.UpdateQuantity("missing", 4)

	assert.Equal(t, 1, s.ItemCount())
}

func TestClear_EmptiesButStaysUsable(t *testing.T) {
	s := NewStore()
	s.AddItem(headphones, 1)
	s.AddItem(watch, 2)

	s.Clear()
	assert.Empty(t, s.Lines())
	assert.Zero(t, s.Total())

	s.AddItem(tshirt, 1)
	assert.Equal(t, 1, s.ItemCount())
}

func TestDerivedTotalsNeverDrift(t *testing.T) {
	s := NewStore()

	ops := []func(){
		func() { s.AddItem(headphones, 1) },
		func() { s.AddItem(watch, 3) },
		func() { s.AddItem(headphones, 2) },
		func() { s.UpdateQuantity(watch.ID, 1) },
		func() { s.AddItem(tshirt, 4) },
		func() { s.RemoveItem(headphones.ID) },
		func() { s.UpdateQuantity(tshirt.ID, -1) },
		func() { s.AddItem(watch, 1) },
	}

	for _, op := range ops {
		op()

		lines := s.Lines()
		seen := make(map[string]bool)
		for _, l := range lines {
			assert.False(t, seen[l.Product.ID], "duplicate line for product %s", l.Product.ID)
			seen[l.Product.ID] = true
			assert.Positive(t, l.Quantity)
		}

		wantTotal, wantCount := recompute(lines)
		assert.InDelta(t, wantTotal, s.Total(), 0.001)
		assert.Equal(t, wantCount, s.ItemCount())
	}
}

func TestSubscribe_NotifiedOnEveryMutation(t *testing.T) {
	s := NewStore()

	var mu sync.Mutex
	calls := 0
	s.Subscribe(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	s.AddItem(headphones, 1)
	s.UpdateQuantity(headphones.ID, 3)
	s.RemoveItem(headphones.ID)
	s.Clear()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 4, calls)
}

func TestSubscribe_CanReadStoreFromCallback(t *testing.T) {
	s := NewStore()

	var observedCount int
	s.Subscribe(func() {
		observedCount = s.ItemCount()
	})

	s.AddItem(headphones, 2)
	assert.Equal(t, 2, observedCount)
}

func TestConcurrentMutations(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddItem(headphones, 1)
			s.AddItem(watch, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, s.ItemCount())
	lines := s.Lines()
	require.Len(t, lines, 2)
}
