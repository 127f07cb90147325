package roboat

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogService interface
type catalogService struct {
	client *Client
}

// ItemDetails returns details for a batch of items. The endpoint demands an
// anti-forgery token even though it changes nothing.
func (s *catalogService) ItemDetails(ctx context.Context, items []ItemArgs) ([]*ItemDetails, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Field: "items", Message: "at least one item is required"}
	}

	body := struct {
		Items []ItemArgs `json:"items"`
	}{Items: items}

	var result struct {
		Data []*ItemDetails `json:"data"`
	}

	endpoint := s.client.catalogURL + "/v1/catalog/items/details"
	if err := s.client.executeWithRetry(ctx, "catalog.item_details", s.client.mutatingRequest(http.MethodPost, endpoint, body), &result); err != nil {
		return nil, errors.Wrap(err, "failed to get item details")
	}

	return result.Data, nil
}
