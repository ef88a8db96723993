package lead

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/karshdev/LeadBlock-BE/internal/pkg/response"
	"github.com/karshdev/LeadBlock-BE/internal/pkg/validator"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Handler handles lead HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates lead handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListLeads handles GET /api/leads
// @Summary	List leads with filtering, search and pagination
// @Tags	Leads
// @Security	BearerAuth
// @Param	status	query	string	false	"Filter by status"	Enums(active, inactive)
// @Param	page	query	int	false	"Page"	default(1)
// @Param	limit	query	int	false	"Page size"	default(10)
// @Param	search	query	string	false	"Substring match over name, email, company"
// @Success	200	{object}	map[string]interface{}
// @Failure	401	{object}	map[string]interface{}
// @Router	/leads [GET]
func (h *Handler) ListLeads(c *gin.Context) {
	var status *Status
	if s := c.Query("status"); s != "" {
		statusVal := Status(s)
		status = &statusVal
	}

	// Non-numeric or out-of-range values fall back to the defaults, so page
	// is always >= 1 and limit always in [1, maxLimit].
	page := defaultPage
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	limit := defaultLimit
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= maxLimit {
			limit = v
		}
	}

	leads, pagination, err := h.service.ListLeads(c.Request.Context(), status, page, limit, c.Query("search"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Paginated(c, http.StatusOK, leads, pagination)
}

// GetLead handles GET /api/leads/:id
// @Summary	Get a lead by id
// @Tags	Leads
// @Security	BearerAuth
// @Param	id	path	string	true	"Lead ID"
// @Success	200	{object}	map[string]interface{}
// @Failure	404	{object}	map[string]interface{}
// @Router	/leads/{id} [GET]
func (h *Handler) GetLead(c *gin.Context) {
	id := c.Param("id")

	l, err := h.service.GetLead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("Lead with id %s not found", id))
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, l)
}

// CreateLead handles POST /api/leads
// @Summary	Create a lead
// @Tags	Leads
// @Security	BearerAuth
// @Param	request	body	CreateLeadRequest	true	"New lead"
// @Success	201	{object}	map[string]interface{}
// @Failure	400	{object}	map[string]interface{}
// @Router	/leads [POST]
func (h *Handler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validator.Validate(&req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	l, err := h.service.CreateLead(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusCreated, l)
}

// UpdateLead handles PUT /api/leads/:id
// @Summary	Update a lead (partial)
// @Tags	Leads
// @Security	BearerAuth
// @Param	id	path	string	true	"Lead ID"
// @Param	request	body	UpdateLeadRequest	true	"Fields to change"
// @Success	200	{object}	map[string]interface{}
// @Failure	400	{object}	map[string]interface{}
// @Failure	404	{object}	map[string]interface{}
// @Router	/leads/{id} [PUT]
func (h *Handler) UpdateLead(c *gin.Context) {
	id := c.Param("id")

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Empty() {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	if msg := validator.Validate(&req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	l, err := h.service.UpdateLead(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("Lead with id %s not found", id))
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, l)
}

// DeleteLead handles DELETE /api/leads/:id
// @Summary	Delete a lead
// @Tags	Leads
// @Security	BearerAuth
// @Param	id	path	string	true	"Lead ID"
// @Success	200	{object}	map[string]interface{}
// @Failure	404	{object}	map[string]interface{}
// @Router	/leads/{id} [DELETE]
func (h *Handler) DeleteLead(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteLead(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("Lead with id %s not found", id))
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Message(c, http.StatusOK, "Lead deleted successfully")
}
