package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryViewer_Go/internal/domain"
)

// MockFetcher mocks the Fetcher interface
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchInventory(ctx context.Context, caseID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, caseID)
	items, _ := args.Get(0).([]domain.InventoryItem)
	return items, args.Error(1)
}

// fetcherFunc adapts a function to Fetcher
type fetcherFunc func(ctx context.Context, caseID string) ([]domain.InventoryItem, error)

func (f fetcherFunc) FetchInventory(ctx context.Context, caseID string) ([]domain.InventoryItem, error) {
	return f(ctx, caseID)
}

// newTestLoader starts an upstream serving handler and a loader pointed at it
func newTestLoader(t *testing.T, handler http.HandlerFunc) (*Loader, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	loader, err := NewLoader(Config{
		BaseURL:    server.URL + "/inventory",
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)
	t.Cleanup(loader.Close)

	return loader, server
}

// writeJSON writes a JSON success response
func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

func sword() domain.InventoryItem {
	return domain.InventoryItem{
		ID:       "1",
		Type:     "weapon",
		Name:     "Sword",
		ImageURL: "/img/sword.png",
		Count:    domain.IntPtr(1),
	}
}
