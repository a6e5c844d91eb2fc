package dto

import (
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=2"`
	Type  string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// UpdateCategoryRequest defines the updatable category fields. The type is an
// immutable classification and is deliberately absent.
type UpdateCategoryRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Color    *string `json:"color"`
	Icon     *string `json:"icon"`
	IsActive *bool   `json:"isActive"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Type            string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	IncludeInactive bool   `form:"includeInactive,default=false"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	IsActive   bool   `json:"isActive"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.Category to its DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       string(c.Type),
		Color:      c.Color,
		Icon:       c.Icon,
		IsActive:   c.IsActive,
	}
}

// ToListCategoriesResponse converts a slice of domain.Category to the list DTO.
func ToListCategoriesResponse(cats []domain.Category) ListCategoriesResponse {
	responses := make([]CategoryResponse, len(cats))
	for i := range cats {
		responses[i] = ToCategoryResponse(&cats[i])
	}
	return ListCategoriesResponse{Categories: responses}
}
