package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/casamatriz/mirror-middleware/internal/httpclient"
)

//go:generate mockgen -destination=mocks/mock_inventory.go -package=mocks -source=inventory.go InventorySource

// InventorySource reads lists and items from the inventory service
type InventorySource interface {
	// FetchLists returns every list
	FetchLists(ctx context.Context) ([]ShoppingList, error)
	// FetchItems returns every item, or only those of listID when it is non-nil
	FetchItems(ctx context.Context, listID *int64) ([]ShoppingItem, error)
	// RawLists returns the /lists response body unparsed
	RawLists(ctx context.Context) ([]byte, error)
	// RawItems returns the /items response body unparsed; listID is forwarded
	// verbatim as the list_id query parameter when non-empty
	RawItems(ctx context.Context, listID string) ([]byte, error)
}

// HTTPInventorySource is the InventorySource backed by the inventory HTTP API
type HTTPInventorySource struct {
	client   httpclient.Client
	endpoint string
}

var _ InventorySource = (*HTTPInventorySource)(nil)

// NewHTTPInventorySource creates a source for the API rooted at endpoint
func NewHTTPInventorySource(client httpclient.Client, endpoint string) (*HTTPInventorySource, error) {
	if client == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid inventory endpoint %q: %w", endpoint, err)
	}
	return &HTTPInventorySource{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
	}, nil
}

// ListsURL is the URL of the lists collection
func (s *HTTPInventorySource) ListsURL() string {
	return s.endpoint + "/lists"
}

func (s *HTTPInventorySource) itemsURL(listID string) string {
	if listID == "" {
		return s.endpoint + "/items"
	}
	return s.endpoint + "/items?" + url.Values{"list_id": []string{listID}}.Encode()
}

// RawLists implements InventorySource
func (s *HTTPInventorySource) RawLists(ctx context.Context) ([]byte, error) {
	body, err := s.client.Get(ctx, s.ListsURL())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory lists: %w", err)
	}
	return body, nil
}

// RawItems implements InventorySource
func (s *HTTPInventorySource) RawItems(ctx context.Context, listID string) ([]byte, error) {
	body, err := s.client.Get(ctx, s.itemsURL(listID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory items: %w", err)
	}
	return body, nil
}

// FetchLists implements InventorySource
func (s *HTTPInventorySource) FetchLists(ctx context.Context) ([]ShoppingList, error) {
	body, err := s.RawLists(ctx)
	if err != nil {
		return nil, err
	}

	var lists []ShoppingList
	if err := json.Unmarshal(body, &lists); err != nil {
		return nil, fmt.Errorf("failed to decode inventory lists: %w", err)
	}
	return lists, nil
}

// FetchItems implements InventorySource
func (s *HTTPInventorySource) FetchItems(ctx context.Context, listID *int64) ([]ShoppingItem, error) {
	var filter string
	if listID != nil {
		filter = strconv.FormatInt(*listID, 10)
	}

	body, err := s.RawItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	var items []ShoppingItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode inventory items: %w", err)
	}
	return items, nil
}
