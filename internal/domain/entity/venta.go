package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago aceptados por el backend.
const (
	TipoPagoEfectivo = "EFECTIVO"
	TipoPagoTarjeta  = "TARJETA"
	TipoPagoOtros    = "OTROS"
)

// MetodoPago es una línea de pago de una venta: tipo, monto y detalle libre
// (n° de autorización, banco, etc.). Todo pago que no sea EFECTIVO exige
// detalles no vacíos.
type MetodoPago struct {
	TipoPago string          `json:"tipoPago"`
	Monto    decimal.Decimal `json:"monto"`
	Detalles string          `json:"detalles"`
}

// Venta es una venta registrada, tal como la devuelve el histórico del
// backend (cabecera + detalleVentaList + métodos de pago).
type Venta struct {
	ID          int64           `json:"id"`
	FechaVenta  time.Time       `json:"fechaVenta"`
	Total       decimal.Decimal `json:"total"`
	Cliente     *Cliente        `json:"cliente,omitempty"`
	CajaSesion  *CajaSesion     `json:"cajaSesion,omitempty"`
	Detalles    []DetalleVenta  `json:"detalleVentaList,omitempty"`
	MetodosPago []MetodoPago    `json:"metodosPago,omitempty"`
}

// DetalleVenta es una línea del histórico de venta. Precio es el unitario al
// momento de la venta; Monto el importe de la línea.
type DetalleVenta struct {
	Producto *Producto       `json:"producto,omitempty"`
	Cantidad int             `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
	Monto    decimal.Decimal `json:"monto"`
}
