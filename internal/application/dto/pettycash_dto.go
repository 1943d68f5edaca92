package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRenditionRequest borrador de rendición de caja chica.
type CreateRenditionRequest struct {
	Period string          `json:"period"` // ej. "2026-08"
	Amount decimal.Decimal `json:"amount"`
	Detail string          `json:"detail"`
}

// RejectRenditionRequest rechazo con motivo obligatorio.
type RejectRenditionRequest struct {
	Reason string `json:"reason"`
}

// RenditionResponse rendición completa con sellos de cada transición.
type RenditionResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	CreatedBy       string          `json:"created_by"`
	Period          string          `json:"period"`
	Amount          decimal.Decimal `json:"amount"`
	Detail          string          `json:"detail,omitempty"`
	Status          string          `json:"status"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
	ReviewedBy      string          `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	ResolvedBy      string          `json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
