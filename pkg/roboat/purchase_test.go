package roboat

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPurchaseMessage(t *testing.T) {
	tests := []struct {
		message string
		reason  PurchaseFailureReason
		target  error
	}{
		{"You have a pending transaction. Please wait 1 minute and try again.", PurchasePendingTransaction, ErrPendingTransaction},
		{"You already own this item.", PurchaseCannotBuyOwnItem, ErrCannotBuyOwnItem},
		{"This item is not for sale.", PurchaseItemNotForSale, ErrItemNotForSale},
		{"You do not have enough Robux to purchase this item.", PurchaseNotEnoughRobux, ErrNotEnoughRobux},
		{"This item has changed price. Please try again.", PurchasePriceChanged, ErrPriceChanged},
	}

	for _, tt := range tests {
		t.Run(tt.reason.String(), func(t *testing.T) {
			err := ClassifyPurchaseMessage(tt.message)

			assert.Equal(t, tt.reason, err.Reason)
			assert.True(t, errors.Is(err, tt.target))
			assert.False(t, errors.Is(err, ErrUnknownPurchaseMessage))
			assert.NotContains(t, err.Error(), tt.message)
		})
	}
}

func TestClassifyPurchaseMessage_ExactMatchOnly(t *testing.T) {
	for _, message := range []string{
		"",
		"you already own this item.",
		"You already own this item",
		" This item is not for sale.",
		"Service unavailable",
	} {
		err := ClassifyPurchaseMessage(message)

		assert.Equal(t, PurchaseUnknownMessage, err.Reason, "message %q", message)
		assert.Equal(t, message, err.Message)
		assert.True(t, errors.Is(err, ErrUnknownPurchaseMessage))
	}
}

func TestPurchaseError_UnknownKeepsMessage(t *testing.T) {
	err := ClassifyPurchaseMessage("Item is temporarily unavailable.")

	assert.Contains(t, err.Error(), "Item is temporarily unavailable.")
}

func TestPurchaseError_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("buy failed: %w", ClassifyPurchaseMessage("This item is not for sale."))

	assert.True(t, errors.Is(err, ErrItemNotForSale))
	assert.False(t, errors.Is(err, ErrNotEnoughRobux))

	var purchaseErr *PurchaseError
	assert.True(t, errors.As(err, &purchaseErr))
	assert.Equal(t, PurchaseItemNotForSale, purchaseErr.Reason)
}
