package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sam-arth07/Phermo/internal/backend"
	"github.com/sam-arth07/Phermo/internal/catalog"
)

type catalogResponse struct {
	Items            []backend.Product `json:"items"`
	Total            int               `json:"total"`
	Page             int               `json:"page"`
	PageSize         int               `json:"pageSize"`
	SearchTerm       string            `json:"searchTerm"`
	SelectedCategory string            `json:"selectedCategory"`
}

// ListProducts moves the cursors named in the query string, re-fetches, and
// returns the page. Setting search or category resets the page cursor; a bare
// page change does not touch the filters.
func (h HandlerSet) ListProducts(c *gin.Context) {
	query := c.Request.URL.Query()
	if query.Has("search") {
		h.catalog.SetSearchTerm(query.Get("search"))
	}
	if query.Has("category") {
		h.catalog.SetSelectedCategory(query.Get("category"))
	}
	if query.Has("page") {
		page, err := strconv.Atoi(query.Get("page"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		h.catalog.SetPage(page)
	}

	if err := h.catalog.Fetch(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toCatalogResponse(h.catalog.State()))
}

func (h HandlerSet) AddProduct(c *gin.Context) {
	var product backend.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.catalog.Add(c.Request.Context(), product)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h HandlerSet) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var product backend.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.catalog.Update(c.Request.Context(), id, product)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h HandlerSet) ListCategories(c *gin.Context) {
	if err := h.catalog.FetchCategories(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.State().Categories})
}

func toCatalogResponse(state catalog.State) catalogResponse {
	return catalogResponse{
		Items:            state.Items,
		Total:            state.Total,
		Page:             state.Page,
		PageSize:         state.PageSize,
		SearchTerm:       state.SearchTerm,
		SelectedCategory: state.SelectedCategory,
	}
}
