// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one of the application's ports with function
// fields for per-test overrides and an in-memory default. Store mocks
// additionally count their write calls so tests can assert that a
// rejected operation never reached persistence.
//
// Usage:
//
//	import "github.com/stockroomhq/stockroom-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    products := mocks.NewMockProductStore()
//	    products.FindFn = func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
//	        return nil, store.ErrProductNotFound
//	    }
//	    // Use the mock in your test...
//	}
package mocks
