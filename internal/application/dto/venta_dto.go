package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

// VentaRequest es el payload de POST /venta. Los nombres de campo (mezcla de
// snake y camel) son los que el backend define; no se normalizan aquí.
type VentaRequest struct {
	IDCliente    *int64                `json:"id_cliente"`
	IDCajaSesion int64                 `json:"id_caja_sesion"`
	Detalles     []DetalleVentaRequest `json:"detalleVentaDTOS"`
	MetodosPago  []entity.MetodoPago   `json:"metodosPago"`
	Total        decimal.Decimal       `json:"total"`
	Cliente      *entity.Cliente       `json:"cliente,omitempty"`
}

// DetalleVentaRequest es una línea del payload de venta: id del producto más
// los snapshots de nombre y precio unitario al momento de la venta.
type DetalleVentaRequest struct {
	IDProducto     int64           `json:"id_producto"`
	Cantidad       int             `json:"cantidad"`
	NombreProducto string          `json:"nombreProducto"`
	PrecioVenta    decimal.Decimal `json:"precioVenta"`
}
