package roboat

import "fmt"

// PurchaseFailureReason classifies why a purchase was refused
type PurchaseFailureReason int

const (
	// PurchaseUnknownMessage is any message not in the known phrase table.
	// The raw message is kept on the error.
	PurchaseUnknownMessage PurchaseFailureReason = iota

	// PurchasePendingTransaction means the account has a pending transaction.
	// The remote service also uses it when it has nothing better to say.
	PurchasePendingTransaction

	// PurchaseItemNotForSale means the listing is gone
	PurchaseItemNotForSale

	// PurchaseNotEnoughRobux means the balance is too low
	PurchaseNotEnoughRobux

	// PurchasePriceChanged means the listing price differs from the expected price
	PurchasePriceChanged

	// PurchaseCannotBuyOwnItem means the item is already owned by the buyer
	PurchaseCannotBuyOwnItem
)

func (r PurchaseFailureReason) String() string {
	switch r {
	case PurchasePendingTransaction:
		return "pending transaction"
	case PurchaseItemNotForSale:
		return "item not for sale"
	case PurchaseNotEnoughRobux:
		return "not enough robux"
	case PurchasePriceChanged:
		return "price changed"
	case PurchaseCannotBuyOwnItem:
		return "cannot buy own item"
	default:
		return "unknown purchase error message"
	}
}

// purchaseMessages maps the exact failure messages of the purchase endpoint
var purchaseMessages = map[string]PurchaseFailureReason{
	"You have a pending transaction. Please wait 1 minute and try again.": PurchasePendingTransaction,
	"You already own this item.":                                          PurchaseCannotBuyOwnItem,
	"This item is not for sale.":                                          PurchaseItemNotForSale,
	"You do not have enough Robux to purchase this item.":                 PurchaseNotEnoughRobux,
	"This item has changed price. Please try again.":                      PurchasePriceChanged,
}

// PurchaseError is returned when the remote service accepted the request
// but refused the purchase
type PurchaseError struct {
	Reason  PurchaseFailureReason
	Message string
}

func (e *PurchaseError) Error() string {
	if e.Reason == PurchaseUnknownMessage {
		return fmt.Sprintf("purchase failed: %s: %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("purchase failed: %s", e.Reason)
}

// Is matches any *PurchaseError with the same reason
func (e *PurchaseError) Is(target error) bool {
	t, ok := target.(*PurchaseError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// Purchase failure sentinels for use with errors.Is
var (
	ErrPendingTransaction     = &PurchaseError{Reason: PurchasePendingTransaction}
	ErrItemNotForSale         = &PurchaseError{Reason: PurchaseItemNotForSale}
	ErrNotEnoughRobux         = &PurchaseError{Reason: PurchaseNotEnoughRobux}
	ErrPriceChanged           = &PurchaseError{Reason: PurchasePriceChanged}
	ErrCannotBuyOwnItem       = &PurchaseError{Reason: PurchaseCannotBuyOwnItem}
	ErrUnknownPurchaseMessage = &PurchaseError{Reason: PurchaseUnknownMessage}
)

// ClassifyPurchaseMessage maps a purchase failure message to its reason by
// exact match. Unmatched messages yield PurchaseUnknownMessage.
func ClassifyPurchaseMessage(message string) *PurchaseError {
	reason, ok := purchaseMessages[message]
	if !ok {
		reason = PurchaseUnknownMessage
	}
	return &PurchaseError{Reason: reason, Message: message}
}
