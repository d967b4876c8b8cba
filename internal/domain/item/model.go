package item

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalogue entry kept by the demo store.
type Item struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal
	CreatedAt   time.Time
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("item name is required")
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("item price must not be negative")
	}
	return nil
}
