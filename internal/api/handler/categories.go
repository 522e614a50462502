package handler

import (
	"net/http"

	"github.com/mcoot/imposter/internal/api/response"
	"github.com/mcoot/imposter/internal/services/table"
)

// CategoryHandler lists word bank categories
type CategoryHandler struct {
	table *table.Table
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(table *table.Table) *CategoryHandler {
	return &CategoryHandler{table: table}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	infos, err := h.table.Categories()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoriesFromInfo(infos))
}
