package entity

import "github.com/shopspring/decimal"

// Producto representa un producto del catálogo tal como lo entrega el backend.
// El stock no vive aquí: el POS consume la vista consolidada por sucursal.
type Producto struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
	Foto        string          `json:"foto,omitempty"`
	Activo      bool            `json:"activo"`
	Categoria   *Categoria      `json:"categoria,omitempty"`
}

// ProductoConsolidado es la vista del catálogo para una sucursal: el producto
// más la suma de stock de todos sus almacenes. Es la única fuente client-side
// para la verificación optimista de stock antes de enviar una venta.
type ProductoConsolidado struct {
	Producto   Producto `json:"producto"`
	TotalStock int      `json:"totalStock"`
}
