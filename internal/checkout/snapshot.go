package checkout

import (
	"time"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/cart"
)

type SnapshotItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// Snapshot is the full cart state at a point in time. The amount charged is
// the TotalAmount of the snapshot taken at dispatch; later cart edits do not
// change an in-flight charge.
type Snapshot struct {
	Items       []SnapshotItem `json:"items"`
	TotalAmount float64        `json:"total_amount"`
	Currency    string         `json:"currency"`
	CapturedAt  time.Time      `json:"captured_at"`
}

// TakeSnapshot reads the cart store and captures its current lines and total.
func TakeSnapshot(store *cart.Store) *Snapshot {
	lines := store.Lines()
	snapshot := &Snapshot{
		Items:      make([]SnapshotItem, 0, len(lines)),
		Currency:   "USD",
		CapturedAt: time.Now(),
	}
	for _, line := range lines {
		snapshot.Items = append(snapshot.Items, SnapshotItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
			Subtotal:    line.Subtotal(),
		})
		snapshot.TotalAmount += line.Subtotal()
	}
	return snapshot
}
