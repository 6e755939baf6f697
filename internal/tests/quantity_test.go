package tests

import (
	"testing"

	"online-ordering/internal/domain"
	"online-ordering/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestDecideQuantityStrategy(t *testing.T) {
	plain := &domain.BasketItem{ID: 1, Quantity: 2}
	withAddons := &domain.BasketItem{
		ID:       2,
		Quantity: 1,
		Addons:   []domain.AddonItem{{AddonBranchProductID: 5, Quantity: 1}},
	}
	withExtras := &domain.BasketItem{
		ID:       3,
		Quantity: 1,
		Extras:   []domain.ExtraItem{{BranchProductExtraID: 9, Quantity: 1}},
	}

	tests := []struct {
		name     string
		item     *domain.BasketItem
		delta    int
		expected service.QuantityStrategy
	}{
		{"plain_increment", plain, 1, service.StrategyDirectUpdate},
		{"plain_decrement_above_zero", plain, -1, service.StrategyDirectUpdate},
		{"plain_decrement_to_zero", plain, -2, service.StrategyDelete},
		{"plain_large_negative", plain, -10, service.StrategyDelete},
		{"addons_increment_duplicates", withAddons, 1, service.StrategyDuplicate},
		{"addons_increment_by_many", withAddons, 3, service.StrategyDuplicate},
		{"extras_increment_duplicates", withExtras, 2, service.StrategyDuplicate},
		{"customized_decrement_deletes", withAddons, -1, service.StrategyDelete},
		{"customized_zero_delta", withAddons, 0, service.StrategyDirectUpdate},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, service.DecideQuantityStrategy(testCase.item, testCase.delta))
		})
	}
}
