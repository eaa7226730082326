package dashboard

import (
	"context"
)

type DashboardService interface {
	Summary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
