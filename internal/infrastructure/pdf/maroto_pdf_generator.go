// Package pdf implementa la representación impresa de las actas de entrega y
// recepción de material, y de la hoja de cargo de un bombero, para firma.
//
// Layout de la página A4 (acta):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Compañía  │  ACTA DE ENTREGA/RECEPCIÓN + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTINATARIO: bombero o destinatario libre + asignación    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Código | Material | Cantidad                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OBSERVACIONES + bloques de firma (emite / recibe)          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	docentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cuerpodebomberos/intranet-api/internal/application/certificate"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 153, Green: 27, Blue: 27}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa certificate.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ certificate.PDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCertificatePDF genera el PDF de un acta y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCertificatePDF(
	_ context.Context,
	cert *entity.Certificate,
	company *entity.Company,
	firefighter *entity.User,
	materials map[string]*entity.Material,
) ([]byte, error) {
	title := "ACTA DE ENTREGA DE MATERIAL"
	if cert.Type == entity.CertificateReception {
		title = "ACTA DE RECEPCIÓN DE MATERIAL"
	}

	m := maroto.New(docConfig(title, company.Name))

	m.AddRows(headerRow(title, company.Name, cert.Date.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(assigneeRow(cert, firefighter))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for i, it := range cert.Items {
		mat := materials[it.MaterialID]
		m.AddRows(itemRow(i+1, mat, it.Quantity))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	if cert.Notes != "" {
		m.AddRows(notesRow(cert.Notes))
	}
	m.AddRows(line.NewRow(10))
	m.AddRows(signatureRow(cert, firefighter))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar acta: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateAssignmentSheetPDF genera la hoja de cargo vigente de un bombero.
func (g *MarotoPDFGenerator) GenerateAssignmentSheetPDF(
	_ context.Context,
	company *entity.Company,
	firefighter *entity.User,
	tallies []*entity.AssignedMaterial,
	materials map[string]*entity.Material,
) ([]byte, error) {
	m := maroto.New(docConfig("Hoja de Cargo", company.Name))

	m.AddRows(headerRow("HOJA DE CARGO DE MATERIAL", company.Name, ""))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("Bombero: "+firefighter.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for i, t := range tallies {
		m.AddRows(itemRow(i+1, materials[t.MaterialID], t.Quantity))
	}

	m.AddRows(line.NewRow(10))
	m.AddRows(row.New(16).Add(
		col.New(6),
		col.New(6).Add(
			text.New("_______________________________", props.Text{Size: 9, Align: align.Center, Top: 4}),
			text.New(firefighter.Name, props.Text{Size: 8, Align: align.Center, Top: 10, Color: colorGray}),
		),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de cargo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func docConfig(title, author string) *docentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
}

// headerRow: compañía (izq), título del documento + fecha (der).
func headerRow(title, companyName, fecha string) core.Row {
	right := []core.Component{
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 1,
		}),
	}
	if fecha != "" {
		right = append(right, text.New("Fecha: "+fecha, props.Text{
			Size: 8, Align: align.Right, Top: 9, Color: colorGray,
		}))
	}
	return row.New(16).Add(
		col.New(6).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cuerpo de Bomberos", props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(6).Add(right...),
	)
}

// assigneeRow: destinatario del acta (bombero de la dotación o texto libre).
func assigneeRow(cert *entity.Certificate, firefighter *entity.User) core.Row {
	name := cert.AssigneeName
	if firefighter != nil {
		name = firefighter.Name
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DESTINATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Tipo de asignación: "+cert.AssignmentType, props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Código", 2, align.Left),
		h("Material", 7, align.Left),
		h("Cant.", 2, align.Right),
	)
}

func itemRow(pos int, mat *entity.Material, qty int) core.Row {
	code, name := "—", "—"
	if mat != nil {
		code, name = mat.Code, mat.Name
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(strconv.Itoa(pos), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(code, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(7).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(strconv.Itoa(qty), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func notesRow(notes string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("OBSERVACIONES", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(notes, props.Text{Size: 8, Top: 7, Color: colorGray}),
	))
}

// signatureRow: bloques de firma de quien emite y quien recibe/devuelve.
func signatureRow(cert *entity.Certificate, firefighter *entity.User) core.Row {
	receiver := cert.AssigneeName
	if firefighter != nil {
		receiver = firefighter.Name
	}
	receiverLabel := "Recibe conforme"
	if cert.Type == entity.CertificateReception {
		receiverLabel = "Devuelve conforme"
	}
	block := func(name, label string) []core.Component {
		return []core.Component{
			text.New("_______________________________", props.Text{Size: 9, Align: align.Center, Top: 4}),
			text.New(name, props.Text{Size: 8, Align: align.Center, Top: 10}),
			text.New(label, props.Text{Size: 7, Align: align.Center, Top: 14, Color: colorGray}),
		}
	}
	return row.New(20).Add(
		col.New(6).Add(block("Inspector de Material Menor", "Emite")...),
		col.New(6).Add(block(receiver, receiverLabel)...),
	)
}
