package lead

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/karshdev/LeadBlock-BE/internal/storage"
)

// Repository handles lead data access over the flat-file store. The whole
// collection is read on every call and rewritten on every mutation; records
// keep their insertion order.
type Repository struct {
	store *storage.Store
}

// NewRepository creates a lead repository.
func NewRepository(store *storage.Store) *Repository {
	return &Repository{store: store}
}

// List returns all leads, optionally restricted to one status.
func (r *Repository) List(ctx context.Context, status *Status) ([]Lead, error) {
	var leads []Lead
	if err := r.store.Load(&leads); err != nil {
		return nil, err
	}

	if status == nil {
		return leads, nil
	}

	filtered := make([]Lead, 0, len(leads))
	for _, l := range leads {
		if l.Status == *status {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// GetByID returns the matching lead, or nil when absent.
func (r *Repository) GetByID(ctx context.Context, id string) (*Lead, error) {
	var leads []Lead
	if err := r.store.Load(&leads); err != nil {
		return nil, err
	}

	for i := range leads {
		if leads[i].ID == id {
			l := leads[i]
			return &l, nil
		}
	}
	return nil, nil
}

// Create appends a new lead with a fresh id and both timestamps set to now.
func (r *Repository) Create(ctx context.Context, req CreateLeadRequest) (*Lead, error) {
	now := time.Now().UTC()
	newLead := Lead{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Company:   req.Company,
		Email:     req.Email,
		Status:    req.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var leads []Lead
	err := r.store.Update(&leads, func() error {
		leads = append(leads, newLead)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &newLead, nil
}

// Update merges the supplied fields over the existing record and refreshes
// UpdatedAt. ID and CreatedAt are never touched.
func (r *Repository) Update(ctx context.Context, id string, req UpdateLeadRequest) (*Lead, error) {
	var updated Lead
	var leads []Lead
	err := r.store.Update(&leads, func() error {
		for i := range leads {
			if leads[i].ID != id {
				continue
			}
			if req.Name != nil {
				leads[i].Name = *req.Name
			}
			if req.Company != nil {
				leads[i].Company = *req.Company
			}
			if req.Email != nil {
				leads[i].Email = *req.Email
			}
			if req.Status != nil {
				leads[i].Status = *req.Status
			}
			leads[i].UpdatedAt = time.Now().UTC()
			updated = leads[i]
			return nil
		}
		return ErrLeadNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the matching lead and reports whether a removal occurred.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	var leads []Lead
	err := r.store.Update(&leads, func() error {
		for i := range leads {
			if leads[i].ID == id {
				leads = append(leads[:i], leads[i+1:]...)
				return nil
			}
		}
		return ErrLeadNotFound
	})
	if errors.Is(err, ErrLeadNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
