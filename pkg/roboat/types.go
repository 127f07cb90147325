package roboat

// Identity is the authenticated account
type Identity struct {
	UserID      uint64 `json:"id"`
	Username    string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Reseller is the seller of a resale listing
type Reseller struct {
	UserID uint64 `json:"userId"`
	Name   string `json:"name"`
}

// Listing is a resale listing of a limited item
type Listing struct {
	// UAID is the unique asset id of the copy being sold
	UAID     uint64   `json:"uaid"`
	Price    uint64   `json:"price"`
	Reseller Reseller `json:"reseller"`

	// SerialNumber exists only for Limited U items
	SerialNumber *uint64 `json:"serialNumber,omitempty"`
}

// UserSale is a sale from the account's transaction history
type UserSale struct {
	SaleID          uint64 `json:"saleId"`
	IsPending       bool   `json:"isPending"`
	UserID          uint64 `json:"userId"`
	UserDisplayName string `json:"userDisplayName"`

	// RobuxReceived is the amount after tax, as reported
	RobuxReceived uint64 `json:"robuxReceived"`
	AssetID       uint64 `json:"assetId"`
	AssetName     string `json:"assetName"`
}

// ItemType is the kind of catalog item
type ItemType string

// Catalog item types
const (
	ItemTypeAsset  ItemType = "Asset"
	ItemTypeBundle ItemType = "Bundle"
)

// ItemArgs identifies a catalog item
type ItemArgs struct {
	ItemType ItemType `json:"itemType"`
	ID       uint64   `json:"id"`
}

// ItemDetails describes a catalog item
type ItemDetails struct {
	ID                      uint64   `json:"id"`
	ItemType                ItemType `json:"itemType"`
	AssetType               *uint64  `json:"assetType,omitempty"`
	BundleType              *uint64  `json:"bundleType,omitempty"`
	Name                    string   `json:"name"`
	Description             string   `json:"description"`
	ProductID               *uint64  `json:"productId,omitempty"`
	Genres                  []string `json:"genres,omitempty"`
	ItemStatus              []string `json:"itemStatus,omitempty"`
	ItemRestrictions        []string `json:"itemRestrictions,omitempty"`
	CreatorHasVerifiedBadge bool     `json:"creatorHasVerifiedBadge"`
	CreatorType             string   `json:"creatorType"`
	CreatorTargetID         uint64   `json:"creatorTargetId"`
	CreatorName             string   `json:"creatorName"`

	// Price is set for non-limited items, LowestPrice for limited items
	Price         *uint64 `json:"price,omitempty"`
	LowestPrice   *uint64 `json:"lowestPrice,omitempty"`
	FavoriteCount uint64  `json:"favoriteCount"`
	PriceStatus   string  `json:"priceStatus,omitempty"`
}
