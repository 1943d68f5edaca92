package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una rendición de caja chica.
// Ciclo: draft → pending_inspector → pending_comandante → approved | rejected.
const (
	RenditionDraft             = "draft"
	RenditionPendingInspector  = "pending_inspector"
	RenditionPendingComandante = "pending_comandante"
	RenditionApproved          = "approved"
	RenditionRejected          = "rejected"
)

// PettyCashRendition es una rendición de caja chica. Cada transición queda
// sellada con actor y timestamp; el rechazo exige un motivo.
type PettyCashRendition struct {
	ID              string
	CompanyID       string
	CreatedBy       string
	Period          string // ej. "2026-08"
	Amount          decimal.Decimal
	Detail          string
	Status          string
	SubmittedAt     *time.Time
	ReviewedBy      string // inspector
	ReviewedAt      *time.Time
	ResolvedBy      string // comandante
	ResolvedAt      *time.Time
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
