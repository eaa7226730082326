package extrapayment

import (
	"context"
)

type ExtraPaymentService interface {
	Create(ctx context.Context, req CreateExtraPaymentRequest) (ExtraPaymentResponse, error)
	Get(ctx context.Context, id string) (ExtraPaymentResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ExtraPaymentResponse, error)
	Delete(ctx context.Context, id string) error
}
