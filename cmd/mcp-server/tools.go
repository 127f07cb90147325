package main

import (
	"context"
	"fmt"

	"github.com/eshaffer321/roboat-go/pkg/roboat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// roboatTools holds the roboat client and implements all tool handlers
type roboatTools struct {
	client *roboat.Client
}

func pageLimit(limit int) roboat.Limit {
	if limit == 0 {
		return roboat.Limit25
	}
	return roboat.Limit(limit)
}

// GetIdentity tool - returns the authenticated account
type GetIdentityInput struct{}

type GetIdentityOutput struct {
	UserID      uint64 `json:"userId" jsonschema:"Numeric user id"`
	Username    string `json:"username" jsonschema:"Unique username"`
	DisplayName string `json:"displayName" jsonschema:"Display name shown on the profile"`
}

func (t *roboatTools) GetIdentity(ctx context.Context, req *mcp.CallToolRequest, input GetIdentityInput) (*mcp.CallToolResult, GetIdentityOutput, error) {
	identity, err := t.client.Users.Authenticated(ctx)
	if err != nil {
		return nil, GetIdentityOutput{}, fmt.Errorf("failed to fetch identity: %w", err)
	}

	return nil, GetIdentityOutput{
		UserID:      identity.UserID,
		Username:    identity.Username,
		DisplayName: identity.DisplayName,
	}, nil
}

// GetRobux tool - returns the Robux balance
type GetRobuxInput struct{}

type GetRobuxOutput struct {
	Robux uint64 `json:"robux" jsonschema:"Current Robux balance"`
}

func (t *roboatTools) GetRobux(ctx context.Context, req *mcp.CallToolRequest, input GetRobuxInput) (*mcp.CallToolResult, GetRobuxOutput, error) {
	robux, err := t.client.Economy.Robux(ctx)
	if err != nil {
		return nil, GetRobuxOutput{}, fmt.Errorf("failed to fetch robux: %w", err)
	}

	return nil, GetRobuxOutput{Robux: robux}, nil
}

// GetResellers tool - lists resale listings of a limited item
type GetResellersInput struct {
	ItemID uint64 `json:"itemId" jsonschema:"Asset id of the limited item"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Page size: 10, 25, 50 or 100 (default: 25)"`
	Cursor string `json:"cursor,omitempty" jsonschema:"Cursor returned by a previous call (optional)"`
}

type ListingEntry struct {
	UAID         uint64  `json:"uaid" jsonschema:"User asset id of the listed copy"`
	Price        uint64  `json:"price" jsonschema:"Price in Robux"`
	SellerID     uint64  `json:"sellerId" jsonschema:"User id of the seller"`
	SellerName   string  `json:"sellerName" jsonschema:"Username of the seller"`
	SerialNumber *uint64 `json:"serialNumber,omitempty" jsonschema:"Serial number of the copy, if limited unique"`
}

type GetResellersOutput struct {
	Listings   []ListingEntry `json:"listings" jsonschema:"Listings on this page"`
	NextCursor string         `json:"nextCursor,omitempty" jsonschema:"Cursor for the next page; empty on the last page"`
}

func (t *roboatTools) GetResellers(ctx context.Context, req *mcp.CallToolRequest, input GetResellersInput) (*mcp.CallToolResult, GetResellersOutput, error) {
	if input.ItemID == 0 {
		return nil, GetResellersOutput{}, fmt.Errorf("itemId is required")
	}

	page, err := t.client.Economy.Resellers(ctx, input.ItemID, pageLimit(input.Limit), input.Cursor)
	if err != nil {
		return nil, GetResellersOutput{}, fmt.Errorf("failed to fetch resellers: %w", err)
	}

	listings := make([]ListingEntry, 0, len(page.Items))
	for _, l := range page.Items {
		listings = append(listings, ListingEntry{
			UAID:         l.UAID,
			Price:        l.Price,
			SellerID:     l.Reseller.UserID,
			SellerName:   l.Reseller.Name,
			SerialNumber: l.SerialNumber,
		})
	}

	return nil, GetResellersOutput{Listings: listings, NextCursor: page.NextCursor}, nil
}

// GetUserSales tool - lists sales of the authenticated account
type GetUserSalesInput struct {
	Limit  int    `json:"limit,omitempty" jsonschema:"Page size: 10, 25, 50 or 100 (default: 25)"`
	Cursor string `json:"cursor,omitempty" jsonschema:"Cursor returned by a previous call (optional)"`
}

type SaleEntry struct {
	SaleID        uint64 `json:"saleId" jsonschema:"Transaction id"`
	IsPending     bool   `json:"isPending" jsonschema:"Whether the Robux are still pending"`
	BuyerID       uint64 `json:"buyerId" jsonschema:"User id of the buyer"`
	BuyerName     string `json:"buyerName" jsonschema:"Name of the buyer"`
	RobuxReceived uint64 `json:"robuxReceived" jsonschema:"Robux received after fees"`
	AssetID       uint64 `json:"assetId" jsonschema:"Asset id of the sold item"`
	AssetName     string `json:"assetName" jsonschema:"Name of the sold item"`
}

type GetUserSalesOutput struct {
	Sales      []SaleEntry `json:"sales" jsonschema:"Sales on this page"`
	NextCursor string      `json:"nextCursor,omitempty" jsonschema:"Cursor for the next page; empty on the last page"`
}

func (t *roboatTools) GetUserSales(ctx context.Context, req *mcp.CallToolRequest, input GetUserSalesInput) (*mcp.CallToolResult, GetUserSalesOutput, error) {
	page, err := t.client.Economy.UserSales(ctx, pageLimit(input.Limit), input.Cursor)
	if err != nil {
		return nil, GetUserSalesOutput{}, fmt.Errorf("failed to fetch user sales: %w", err)
	}

	sales := make([]SaleEntry, 0, len(page.Items))
	for _, s := range page.Items {
		sales = append(sales, SaleEntry{
			SaleID:        s.SaleID,
			IsPending:     s.IsPending,
			BuyerID:       s.UserID,
			BuyerName:     s.UserDisplayName,
			RobuxReceived: s.RobuxReceived,
			AssetID:       s.AssetID,
			AssetName:     s.AssetName,
		})
	}

	return nil, GetUserSalesOutput{Sales: sales, NextCursor: page.NextCursor}, nil
}

// GetItemDetails tool - catalog details for assets and bundles
type GetItemDetailsInput struct {
	AssetIDs  []uint64 `json:"assetIds,omitempty" jsonschema:"Asset ids to look up"`
	BundleIDs []uint64 `json:"bundleIds,omitempty" jsonschema:"Bundle ids to look up"`
}

type ItemEntry struct {
	ID           uint64   `json:"id" jsonschema:"Asset or bundle id"`
	ItemType     string   `json:"itemType" jsonschema:"Asset or Bundle"`
	Name         string   `json:"name" jsonschema:"Item name"`
	CreatorName  string   `json:"creatorName" jsonschema:"Name of the creator"`
	ProductID    *uint64  `json:"productId,omitempty" jsonschema:"Product id used for purchases"`
	Price        *uint64  `json:"price,omitempty" jsonschema:"Catalog price in Robux"`
	LowestPrice  *uint64  `json:"lowestPrice,omitempty" jsonschema:"Lowest resale price in Robux"`
	Restrictions []string `json:"restrictions,omitempty" jsonschema:"Item restrictions such as Limited or LimitedUnique"`
}

type GetItemDetailsOutput struct {
	Items []ItemEntry `json:"items" jsonschema:"Details of the requested items"`
	Count int         `json:"count" jsonschema:"Number of items returned"`
}

func (t *roboatTools) GetItemDetails(ctx context.Context, req *mcp.CallToolRequest, input GetItemDetailsInput) (*mcp.CallToolResult, GetItemDetailsOutput, error) {
	var args []roboat.ItemArgs
	for _, id := range input.AssetIDs {
		args = append(args, roboat.ItemArgs{ItemType: roboat.ItemTypeAsset, ID: id})
	}
	for _, id := range input.BundleIDs {
		args = append(args, roboat.ItemArgs{ItemType: roboat.ItemTypeBundle, ID: id})
	}

	details, err := t.client.Catalog.ItemDetails(ctx, args)
	if err != nil {
		return nil, GetItemDetailsOutput{}, fmt.Errorf("failed to fetch item details: %w", err)
	}

	items := make([]ItemEntry, 0, len(details))
	for _, d := range details {
		items = append(items, ItemEntry{
			ID:           d.ID,
			ItemType:     string(d.ItemType),
			Name:         d.Name,
			CreatorName:  d.CreatorName,
			ProductID:    d.ProductID,
			Price:        d.Price,
			LowestPrice:  d.LowestPrice,
			Restrictions: d.ItemRestrictions,
		})
	}

	return nil, GetItemDetailsOutput{Items: items, Count: len(items)}, nil
}
