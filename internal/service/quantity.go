package service

import "online-ordering/internal/domain"

// QuantityStrategy names what a quantity delta does to a basket line.
type QuantityStrategy int

const (
	// StrategyDirectUpdate rewrites the line's quantity in place.
	StrategyDirectUpdate QuantityStrategy = iota
	// StrategyDuplicate inserts delta copies of the full line, customizations
	// included, and leaves the original row untouched.
	StrategyDuplicate
	// StrategyDelete removes the line; quantities never drop below one.
	StrategyDelete
)

// DecideQuantityStrategy picks how a delta is applied. A plain quantity bump
// on a customized line would not replicate its addon/extra set, so customized
// lines grow by duplication; everything else is a direct update, and any
// result below one is a delete.
func DecideQuantityStrategy(item *domain.BasketItem, delta int) QuantityStrategy {
	if item.Quantity+delta < 1 {
		return StrategyDelete
	}
	if delta > 0 && item.Customized() {
		return StrategyDuplicate
	}
	return StrategyDirectUpdate
}
