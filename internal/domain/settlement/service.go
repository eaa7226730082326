package settlement

import (
	"context"
)

type SettlementService interface {
	// Preview runs the aggregation for one employee without persisting
	// anything.
	Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error)

	// WeeklyPreview returns the commission-only view, one row per active
	// therapist. Therapists without sales in the period get a zero row.
	WeeklyPreview(ctx context.Context, req WeeklyPreviewRequest) ([]WeeklyPreviewItem, error)

	// Create recomputes the payout and confirms it through the ledger.
	Create(ctx context.Context, req CreateSettlementRequest) (SettlementResponse, error)

	Get(ctx context.Context, id string) (SettlementResponse, error)
	List(ctx context.Context, filter ListFilter) ([]SettlementResponse, error)

	// Delete reverses the settlement: the record is soft-deleted and its
	// consumed extra payments become eligible again.
	Delete(ctx context.Context, id string) error
}
