package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcatalog "github.com/warungpos/backend/internal/application/catalog"
)

// RecipeHandler handles recipe component endpoints
type RecipeHandler struct {
	BaseHandler
	service *appcatalog.RecipeService
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(service *appcatalog.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// RegisterRoutes registers recipe routes. Listing hangs off the product
// resource since components only make sense per product.
func (h *RecipeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.POST("", h.Create)
		recipes.DELETE("/:id", h.Delete)
	}
	rg.GET("/products/:id/recipe", h.ListByProduct)
}

// Create handles POST /recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req appcatalog.CreateRecipeComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListByProduct handles GET /products/:id/recipe
func (h *RecipeHandler) ListByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	responses, err := h.service.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, responses)
}

// Delete handles DELETE /recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid recipe component ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
