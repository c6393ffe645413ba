// Package pdf genera el recibo imprimible de una venta con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Panadería + "Recibo de Venta"                      │
//	│  CLIENTE: Nombre / Email / NIT (Anónimo si no hay cliente)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cantidad | P.Unit | Importe              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGOS: método | monto | detalles                           │
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panaderito-pos/internal/application/dto"
	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 63, Blue: 4}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// GeneradorRecibo produce el recibo en PDF a partir del snapshot de la venta
// recién enviada (el mismo contrato que la factura en pantalla del POS).
type GeneradorRecibo struct {
	nombreNegocio string
}

// NewGeneradorRecibo construye el generador con el nombre del negocio.
func NewGeneradorRecibo(nombreNegocio string) *GeneradorRecibo {
	if nombreNegocio == "" {
		nombreNegocio = "Mi Panaderito"
	}
	return &GeneradorRecibo{nombreNegocio: nombreNegocio}
}

// Generar genera el PDF del recibo y devuelve sus bytes.
func (g *GeneradorRecibo) Generar(venta dto.VentaRequest, cliente *entity.Cliente, fecha time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Venta", true).
		WithAuthor(g.nombreNegocio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRows(fecha)...)
	m.AddRows(clienteRows(cliente)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tablaHeaderRow())
	m.AddRows(tablaDetalleRows(venta.Detalles)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(pagosRows(venta.MetodosPago)...)
	m.AddRows(totalRow(venta.Total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *GeneradorRecibo) headerRows(fecha time.Time) []core.Row {
	return []core.Row{
		row.New(10).Add(
			text.NewCol(8, g.nombreNegocio, props.Text{Size: 14, Style: fontstyle.Bold, Color: colorPrimary}),
			text.NewCol(4, "Recibo de Venta", props.Text{Size: 11, Align: align.Right}),
		),
		row.New(6).Add(
			text.NewCol(12, fecha.Format("02/01/2006 15:04"), props.Text{Size: 8, Color: colorGray}),
		),
	}
}

func clienteRows(cliente *entity.Cliente) []core.Row {
	nombre, email, nit := "Anónimo", "No proporcionado", "N/A"
	if cliente != nil {
		if cliente.Nombre != "" {
			nombre = cliente.Nombre
		}
		if cliente.Email != "" {
			email = cliente.Email
		}
		if cliente.NIT != 0 {
			nit = fmt.Sprintf("%d", cliente.NIT)
		}
	}
	return []core.Row{
		row.New(5).Add(text.NewCol(12, "Nombre: "+nombre)),
		row.New(5).Add(text.NewCol(12, "Email: "+email)),
		row.New(5).Add(text.NewCol(12, "NIT: "+nit)),
	}
}

func tablaHeaderRow() core.Row {
	estilo := props.Text{Size: 9, Style: fontstyle.Bold}
	derecha := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	return row.New(7).Add(
		text.NewCol(6, "Producto", estilo),
		text.NewCol(2, "Cantidad", derecha),
		text.NewCol(2, "P. Unit", derecha),
		text.NewCol(2, "Importe", derecha),
	)
}

func tablaDetalleRows(detalles []dto.DetalleVentaRequest) []core.Row {
	rows := make([]core.Row, 0, len(detalles))
	derecha := props.Text{Size: 9, Align: align.Right}
	for _, d := range detalles {
		importe := d.PrecioVenta.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		rows = append(rows, row.New(6).Add(
			text.NewCol(6, d.NombreProducto),
			text.NewCol(2, fmt.Sprintf("%d", d.Cantidad), derecha),
			text.NewCol(2, "Bs. "+d.PrecioVenta.StringFixed(2), derecha),
			text.NewCol(2, "Bs. "+importe.StringFixed(2), derecha),
		))
	}
	return rows
}

func pagosRows(metodos []entity.MetodoPago) []core.Row {
	rows := []core.Row{
		row.New(6).Add(text.NewCol(12, "Métodos de pago", props.Text{Size: 9, Style: fontstyle.Bold})),
	}
	derecha := props.Text{Size: 9, Align: align.Right}
	for _, mp := range metodos {
		rows = append(rows, row.New(5).Add(
			text.NewCol(4, mp.TipoPago),
			text.NewCol(4, "Bs. "+mp.Monto.StringFixed(2), derecha),
			text.NewCol(4, mp.Detalles, props.Text{Size: 8, Color: colorGray}),
		))
	}
	return rows
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(9).Add(
		col.New(8),
		text.NewCol(2, "TOTAL", props.Text{Size: 11, Style: fontstyle.Bold}),
		text.NewCol(2, "Bs. "+total.StringFixed(2), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
	)
}
