package http

import (
	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
)

// Mapeo entidad → DTO de respuesta. Las entidades de dominio no llevan tags
// JSON; todo lo que sale por la API pasa por estos mapeos.

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

func toCompanyList(list []*entity.Company) []dto.CompanyResponse {
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompanyResponse(c))
	}
	return out
}

func toMaterialResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		Code:          m.Code,
		Name:          m.Name,
		Brand:         m.Brand,
		Model:         m.Model,
		Category:      m.Category,
		SubFamily:     m.SubFamily,
		Condition:     m.Condition,
		SerialNumber:  m.SerialNumber,
		StockQuantity: m.StockQuantity,
		CreatedAt:     m.CreatedAt,
	}
}

func toMaterialList(list []*entity.Material) []dto.MaterialResponse {
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMaterialResponse(m))
	}
	return out
}

func toHistoryResponse(row *entity.MaterialHistory) dto.MaterialHistoryResponse {
	return dto.MaterialHistoryResponse{
		ID:             row.ID,
		MaterialID:     row.MaterialID,
		UserID:         row.UserID,
		Type:           row.Type,
		QuantityChange: row.QuantityChange,
		CurrentBalance: row.CurrentBalance,
		ReferenceType:  row.ReferenceType,
		ReferenceID:    row.ReferenceID,
		Notes:          row.Notes,
		CreatedAt:      row.CreatedAt,
	}
}

func toHistoryList(rows []*entity.MaterialHistory) []dto.MaterialHistoryResponse {
	out := make([]dto.MaterialHistoryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toHistoryResponse(row))
	}
	return out
}

func toCertificateResponse(cert *entity.Certificate) dto.CertificateResponse {
	items := make([]dto.CertificateItemResponse, 0, len(cert.Items))
	for _, item := range cert.Items {
		items = append(items, dto.CertificateItemResponse{
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
		})
	}
	return dto.CertificateResponse{
		ID:             cert.ID,
		CompanyID:      cert.CompanyID,
		Type:           cert.Type,
		FirefighterID:  cert.FirefighterID,
		AssigneeName:   cert.AssigneeName,
		AssignmentType: cert.AssignmentType,
		IssuedByID:     cert.IssuedByID,
		Date:           cert.Date,
		Notes:          cert.Notes,
		Items:          items,
		CreatedAt:      cert.CreatedAt,
	}
}

func toCertificateList(list []*entity.Certificate) []dto.CertificateResponse {
	out := make([]dto.CertificateResponse, 0, len(list))
	for _, cert := range list {
		out = append(out, toCertificateResponse(cert))
	}
	return out
}

func toAssignedResponse(t *entity.AssignedMaterial, m *entity.Material) dto.AssignedMaterialResponse {
	resp := dto.AssignedMaterialResponse{
		FirefighterID: t.FirefighterID,
		MaterialID:    t.MaterialID,
		Quantity:      t.Quantity,
		UpdatedAt:     t.UpdatedAt,
	}
	if m != nil {
		resp.MaterialName = m.Name
	}
	return resp
}

func toVehicleResponse(v *entity.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:           v.ID,
		CompanyID:    v.CompanyID,
		Denomination: v.Denomination,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		Plate:        v.Plate,
		Status:       v.Status,
		UpdatedAt:    v.UpdatedAt,
	}
}

func toVehicleList(list []*entity.Vehicle) []dto.VehicleResponse {
	out := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVehicleResponse(v))
	}
	return out
}

func toIssueResponse(i *entity.VehicleIssue) dto.IssueResponse {
	return dto.IssueResponse{
		ID:          i.ID,
		VehicleID:   i.VehicleID,
		ReportedBy:  i.ReportedBy,
		Title:       i.Title,
		Description: i.Description,
		Status:      i.Status,
		ReviewedBy:  i.ReviewedBy,
		ReviewedAt:  i.ReviewedAt,
		ResolvedBy:  i.ResolvedBy,
		ResolvedAt:  i.ResolvedAt,
		CreatedAt:   i.CreatedAt,
	}
}

func toIssueList(list []*entity.VehicleIssue) []dto.IssueResponse {
	out := make([]dto.IssueResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toIssueResponse(i))
	}
	return out
}

func toMaintenanceResponse(m *entity.VehicleMaintenance) dto.MaintenanceResponse {
	return dto.MaintenanceResponse{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		OpenedBy:    m.OpenedBy,
		Description: m.Description,
		Status:      m.Status,
		CompletedBy: m.CompletedBy,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func toChecklistResponse(cl *entity.VehicleChecklist) dto.ChecklistResponse {
	items := make([]dto.ChecklistItemResponse, 0, len(cl.Items))
	for _, item := range cl.Items {
		items = append(items, dto.ChecklistItemResponse{
			Label:       item.Label,
			OK:          item.OK,
			Observation: item.Observation,
		})
	}
	return dto.ChecklistResponse{
		ID:          cl.ID,
		VehicleID:   cl.VehicleID,
		PerformedBy: cl.PerformedBy,
		Date:        cl.Date,
		Items:       items,
		CreatedAt:   cl.CreatedAt,
	}
}

func toChecklistList(list []*entity.VehicleChecklist) []dto.ChecklistResponse {
	out := make([]dto.ChecklistResponse, 0, len(list))
	for _, cl := range list {
		out = append(out, toChecklistResponse(cl))
	}
	return out
}

func toTicketResponse(t *entity.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:             t.ID,
		CompanyID:      t.CompanyID,
		CreatedBy:      t.CreatedBy,
		AssignedTo:     t.AssignedTo,
		Subject:        t.Subject,
		Description:    t.Description,
		Status:         t.Status,
		AttachmentPath: t.AttachmentPath,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toTicketList(list []*entity.Ticket) []dto.TicketResponse {
	out := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTicketResponse(t))
	}
	return out
}

func toRenditionResponse(r *entity.PettyCashRendition) dto.RenditionResponse {
	return dto.RenditionResponse{
		ID:              r.ID,
		CompanyID:       r.CompanyID,
		CreatedBy:       r.CreatedBy,
		Period:          r.Period,
		Amount:          r.Amount,
		Detail:          r.Detail,
		Status:          r.Status,
		SubmittedAt:     r.SubmittedAt,
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		ResolvedBy:      r.ResolvedBy,
		ResolvedAt:      r.ResolvedAt,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
	}
}

func toRenditionList(list []*entity.PettyCashRendition) []dto.RenditionResponse {
	out := make([]dto.RenditionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRenditionResponse(r))
	}
	return out
}
