package roboat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

const userSalesTransactionType = "Sale"

// economyService implements the EconomyService interface
type economyService struct {
	client *Client
}

// Robux returns the balance of the authenticated account
func (s *economyService) Robux(ctx context.Context) (uint64, error) {
	userID, err := s.client.UserID(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get robux")
	}

	req, err := s.client.newRequest(http.MethodGet, fmt.Sprintf("%s/v1/users/%d/currency", s.client.economyURL, userID), nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get robux")
	}

	var result struct {
		Robux uint64 `json:"robux"`
	}

	if err := s.client.executeReadonly(ctx, "economy.robux", req, &result); err != nil {
		return 0, errors.Wrap(err, "failed to get robux")
	}

	return result.Robux, nil
}

// Resellers returns one page of resale listings for a limited item
func (s *economyService) Resellers(ctx context.Context, itemID uint64, limit Limit, cursor string) (*Page[Listing], error) {
	if err := limit.Validate(); err != nil {
		return nil, err
	}

	query := pageQuery(limit, cursor)
	endpoint := fmt.Sprintf("%s/v1/assets/%d/resellers?%s", s.client.economyURL, itemID, query.Encode())

	req, err := s.client.newRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get resellers")
	}

	var result pagedResponse[struct {
		UserAssetID uint64 `json:"userAssetId"`
		Seller      struct {
			ID   uint64 `json:"id"`
			Type string `json:"type"`
			Name string `json:"name"`
		} `json:"seller"`
		Price        uint64  `json:"price"`
		SerialNumber *uint64 `json:"serialNumber"`
	}]

	if err := s.client.executeReadonly(ctx, "economy.resellers", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get resellers")
	}

	listings := make([]Listing, 0, len(result.Data))
	for _, raw := range result.Data {
		listings = append(listings, Listing{
			UAID:  raw.UserAssetID,
			Price: raw.Price,
			Reseller: Reseller{
				UserID: raw.Seller.ID,
				Name:   raw.Seller.Name,
			},
			SerialNumber: raw.SerialNumber,
		})
	}

	return &Page[Listing]{Items: listings, NextCursor: result.nextCursor()}, nil
}

// UserSales returns one page of the account's sales
func (s *economyService) UserSales(ctx context.Context, limit Limit, cursor string) (*Page[UserSale], error) {
	if err := limit.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.client.UserID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user sales")
	}

	query := pageQuery(limit, cursor)
	query.Set("transactionType", userSalesTransactionType)
	endpoint := fmt.Sprintf("%s/v2/users/%d/transactions?%s", s.client.economyURL, userID, query.Encode())

	req, err := s.client.newRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user sales")
	}

	var result pagedResponse[struct {
		ID        uint64 `json:"id"`
		IsPending bool   `json:"isPending"`
		Agent     struct {
			ID   uint64 `json:"id"`
			Type string `json:"type"`
			Name string `json:"name"`
		} `json:"agent"`
		Details struct {
			ID   uint64 `json:"id"`
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"details"`
		Currency struct {
			Amount uint64 `json:"amount"`
			Type   string `json:"type"`
		} `json:"currency"`
	}]

	if err := s.client.executeReadonly(ctx, "economy.user_sales", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get user sales")
	}

	sales := make([]UserSale, 0, len(result.Data))
	for _, raw := range result.Data {
		sales = append(sales, UserSale{
			SaleID:          raw.ID,
			IsPending:       raw.IsPending,
			UserID:          raw.Agent.ID,
			UserDisplayName: raw.Agent.Name,
			RobuxReceived:   raw.Currency.Amount,
			AssetID:         raw.Details.ID,
			AssetName:       raw.Details.Name,
		})
	}

	return &Page[UserSale]{Items: sales, NextCursor: result.nextCursor()}, nil
}

// PutLimitedOnSale lists a copy of a limited item for resale
func (s *economyService) PutLimitedOnSale(ctx context.Context, itemID, uaid, price uint64) error {
	endpoint := resellableCopyURL(s.client.economyURL, itemID, uaid)
	body := map[string]interface{}{
		"price": price,
	}

	if err := s.client.executeWithRetry(ctx, "economy.put_on_sale", s.client.mutatingRequest(http.MethodPatch, endpoint, body), nil); err != nil {
		return errors.Wrap(err, "failed to put limited on sale")
	}

	return nil
}

// TakeLimitedOffSale removes a copy of a limited item from resale
func (s *economyService) TakeLimitedOffSale(ctx context.Context, itemID, uaid uint64) error {
	endpoint := resellableCopyURL(s.client.economyURL, itemID, uaid)
	body := map[string]interface{}{}

	if err := s.client.executeWithRetry(ctx, "economy.take_off_sale", s.client.mutatingRequest(http.MethodPatch, endpoint, body), nil); err != nil {
		return errors.Wrap(err, "failed to take limited off sale")
	}

	return nil
}

// PurchaseLimited buys a resale listing. productID is the product id of
// the item, not its asset id.
func (s *economyService) PurchaseLimited(ctx context.Context, productID, sellerID, uaid, price uint64) error {
	endpoint := fmt.Sprintf("%s/v1/purchases/products/%d", s.client.economyURL, productID)
	body := map[string]interface{}{
		"expectedCurrency": 1,
		"expectedPrice":    price,
		"expectedSellerId": sellerID,
		"userAssetId":      uaid,
	}

	var result struct {
		Purchased bool   `json:"purchased"`
		Reason    string `json:"reason"`
		ErrorMsg  string `json:"errorMsg"`
	}

	if err := s.client.executeWithRetry(ctx, "economy.purchase_limited", s.client.mutatingRequest(http.MethodPost, endpoint, body), &result); err != nil {
		return errors.Wrap(err, "failed to purchase limited")
	}

	if !result.Purchased {
		return ClassifyPurchaseMessage(result.ErrorMsg)
	}

	return nil
}

func pageQuery(limit Limit, cursor string) url.Values {
	query := url.Values{}
	query.Set("cursor", cursor)
	query.Set("limit", limit.String())
	return query
}

func resellableCopyURL(base string, itemID, uaid uint64) string {
	return fmt.Sprintf("%s/v1/assets/%d/resellable-copies/%d", base, itemID, uaid)
}
