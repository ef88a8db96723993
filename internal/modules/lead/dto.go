package lead

// CreateLeadRequest carries a full new lead; every field is required.
type CreateLeadRequest struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Status  Status `json:"status" validate:"required,oneof=active inactive"`
}

// UpdateLeadRequest carries a partial update; absent fields are left
// unchanged, present fields are validated individually.
type UpdateLeadRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Company *string `json:"company" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Status  *Status `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Empty reports whether no recognized field was supplied.
func (r *UpdateLeadRequest) Empty() bool {
	return r.Name == nil && r.Company == nil && r.Email == nil && r.Status == nil
}

// Pagination describes one page of the filtered collection.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
