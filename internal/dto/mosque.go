package dto

import (
	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateMosqueRequest carries the settings form. The first save creates the
// singleton mosque row; later saves update it.
type UpdateMosqueRequest struct {
	Name           string          `json:"name" binding:"required,min=3"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email" binding:"omitempty,email"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningDate    string          `json:"openingDate" binding:"required,datetime=2006-01-02"`
}

// MosqueResponse is the full settings view of the mosque.
type MosqueResponse struct {
	MosqueID       string          `json:"mosqueID"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningDate    string          `json:"openingDate"`
}

// PublicMosqueResponse exposes identity fields only, for the landing page.
type PublicMosqueResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ToMosqueResponse converts a domain.Mosque to its settings DTO.
func ToMosqueResponse(m *domain.Mosque) MosqueResponse {
	return MosqueResponse{
		MosqueID:       m.MosqueID,
		Name:           m.Name,
		Address:        m.Address,
		Phone:          m.Phone,
		Email:          m.Email,
		OpeningBalance: m.OpeningBalance,
		OpeningDate:    m.OpeningDate.Format("2006-01-02"),
	}
}

// ToPublicMosqueResponse converts a domain.Mosque to its public DTO.
func ToPublicMosqueResponse(m *domain.Mosque) PublicMosqueResponse {
	return PublicMosqueResponse{
		Name:    m.Name,
		Address: m.Address,
		Phone:   m.Phone,
		Email:   m.Email,
	}
}
