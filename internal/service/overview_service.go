package service

import (
	"context"
	"log/slog"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/domain"
)

// OverviewSource supplies the aggregate figures behind the dashboard
// overview. It is a swappable capability selected by configuration:
// MockOverviewSource serves deterministic sample data, the live source
// aggregates from the stores.
type OverviewSource interface {
	Snapshot(ctx context.Context) (domain.Overview, error)
}

// OverviewService shapes a source snapshot into an envelope.
type OverviewService struct {
	source OverviewSource
	logger *slog.Logger
}

// NewOverviewService creates a new OverviewService.
func NewOverviewService(source OverviewSource, logger *slog.Logger) (*OverviewService, error) {
	if source == nil {
		return nil, domain.NewValidationError("source", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OverviewService{
		source: source,
		logger: logger.With(slog.String("component", "overview_service")),
	}, nil
}

// Get returns the current dashboard overview.
func (s *OverviewService) Get(ctx context.Context) shared.Envelope[domain.Overview] {
	snapshot, err := s.source.Snapshot(ctx)
	if err != nil {
		return failFromError[domain.Overview](ctx, s.logger, "get_overview", err)
	}
	return shared.OK("overview retrieved", snapshot)
}

// MockOverviewSource serves fixed sample figures. Used when the
// dashboard source is configured as "mock".
type MockOverviewSource struct{}

// Snapshot implements OverviewSource with deterministic sample data.
func (MockOverviewSource) Snapshot(ctx context.Context) (domain.Overview, error) {
	return domain.Overview{
		ProductCount:    128,
		CategoryCount:   12,
		SupplierCount:   9,
		OrderCount:      342,
		PendingOrders:   17,
		RevenueCents:    12_485_900,
		LowStockCount:   6,
		RegisteredUsers: 57,
	}, nil
}

// The live OverviewSource lives in the postgres platform package; it
// fills the snapshot from a single aggregate query.
