package sale

import (
	"context"
)

type SaleService interface {
	Create(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)
	Get(ctx context.Context, id string) (SaleResponse, error)
	List(ctx context.Context, filter ListSalesFilter) ([]SaleResponse, error)
	Update(ctx context.Context, req UpdateSaleRequest) (SaleResponse, error)
	Delete(ctx context.Context, id string) error
}
