package lead

import "context"

// LeadRepositoryInterface defines lead data access for the service.
type LeadRepositoryInterface interface {
	List(ctx context.Context, status *Status) ([]Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, req CreateLeadRequest) (*Lead, error)
	Update(ctx context.Context, id string, req UpdateLeadRequest) (*Lead, error)
	Delete(ctx context.Context, id string) (bool, error)
}
