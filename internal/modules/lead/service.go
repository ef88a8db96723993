package lead

import (
	"context"
	"strings"
)

// Service handles lead business logic: filtering, search, pagination, and
// the not-found mapping over the repository.
type Service struct {
	repo LeadRepositoryInterface
}

// NewService creates the lead service.
func NewService(repo LeadRepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ListLeads applies the status filter, a case-insensitive substring search
// over name, email and company, then slices out one page. A blank or
// whitespace-only search is equivalent to no search. page and limit must be
// >= 1; the boundary layer guarantees that.
func (s *Service) ListLeads(ctx context.Context, status *Status, page, limit int, search string) ([]Lead, Pagination, error) {
	leads, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, Pagination{}, err
	}

	if q := strings.TrimSpace(search); q != "" {
		searchLower := strings.ToLower(q)
		matched := make([]Lead, 0, len(leads))
		for _, l := range leads {
			if strings.Contains(strings.ToLower(l.Name), searchLower) ||
				strings.Contains(strings.ToLower(l.Email), searchLower) ||
				strings.Contains(strings.ToLower(l.Company), searchLower) {
				matched = append(matched, l)
			}
		}
		leads = matched
	}

	total := len(leads)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	// A page beyond range yields an empty slice, not an error.
	items := make([]Lead, 0, end-start)
	items = append(items, leads[start:end]...)

	return items, Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// GetLead returns the lead with the given id.
func (s *Service) GetLead(ctx context.Context, id string) (*Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

// CreateLead stores a new lead.
func (s *Service) CreateLead(ctx context.Context, req CreateLeadRequest) (*Lead, error) {
	return s.repo.Create(ctx, req)
}

// UpdateLead merges the supplied fields over the stored record.
func (s *Service) UpdateLead(ctx context.Context, id string, req UpdateLeadRequest) (*Lead, error) {
	return s.repo.Update(ctx, id, req)
}

// DeleteLead removes the lead with the given id.
func (s *Service) DeleteLead(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLeadNotFound
	}
	return nil
}
