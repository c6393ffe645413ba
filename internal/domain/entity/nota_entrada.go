package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotaEntrada registra un ingreso de mercadería de un proveedor a un almacén.
type NotaEntrada struct {
	ID        int64           `json:"id"`
	Fecha     time.Time       `json:"fecha"`
	Total     decimal.Decimal `json:"total"`
	Proveedor *Proveedor      `json:"proveedor,omitempty"`
	Almacen   *Almacen        `json:"almacen,omitempty"`
	Detalles  []DetalleNota   `json:"detalleNotaList,omitempty"`
}

// DetalleNota es una línea de una nota de entrada.
type DetalleNota struct {
	Producto *Producto       `json:"producto,omitempty"`
	Cantidad int             `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
}
