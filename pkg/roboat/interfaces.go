package roboat

import "context"

// EconomyService handles currency, resale and transaction operations
type EconomyService interface {
	// Robux returns the balance of the authenticated account
	Robux(ctx context.Context) (uint64, error)

	// Resellers returns one page of resale listings for a limited item
	Resellers(ctx context.Context, itemID uint64, limit Limit, cursor string) (*Page[Listing], error)

	// UserSales returns one page of the account's sales
	UserSales(ctx context.Context, limit Limit, cursor string) (*Page[UserSale], error)

	// PutLimitedOnSale lists a copy of a limited item for resale
	PutLimitedOnSale(ctx context.Context, itemID, uaid, price uint64) error

	// TakeLimitedOffSale removes a copy of a limited item from resale
	TakeLimitedOffSale(ctx context.Context, itemID, uaid uint64) error

	// PurchaseLimited buys a resale listing. A refused purchase is
	// returned as *PurchaseError.
	PurchaseLimited(ctx context.Context, productID, sellerID, uaid, price uint64) error
}

// UserService handles account information
type UserService interface {
	// Authenticated returns the identity of the authenticated account,
	// fetching it once and serving it from cache afterwards
	Authenticated(ctx context.Context) (*Identity, error)
}

// CatalogService handles catalog lookups
type CatalogService interface {
	// ItemDetails returns details for a batch of items
	ItemDetails(ctx context.Context, items []ItemArgs) ([]*ItemDetails, error)
}
