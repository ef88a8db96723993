package lead

import "github.com/gin-gonic/gin"

// RegisterRoutes registers lead CRUD routes on an authenticated group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.ListLeads)
		leads.GET("/:id", handler.GetLead)
		leads.POST("", handler.CreateLead)
		leads.PUT("/:id", handler.UpdateLead)
		leads.DELETE("/:id", handler.DeleteLead)
	}
}
