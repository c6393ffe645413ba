package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

// Productos opera sobre /producto, incluida la vista consolidada por sucursal
// que alimenta la pantalla del punto de venta.
type Productos struct {
	crud[entity.Producto]
}

// NewProductos construye el recurso de productos.
func NewProductos(c *Client) *Productos {
	return &Productos{crud[entity.Producto]{c, "/producto"}}
}

// Consolidados devuelve, para una sucursal, cada producto con la suma del
// stock de todos sus almacenes (totalStock).
func (p *Productos) Consolidados(ctx context.Context, idSucursal int64) ([]entity.ProductoConsolidado, error) {
	var items []entity.ProductoConsolidado
	ruta := fmt.Sprintf("/producto/consolidado/%d", idSucursal)
	if err := p.c.hacer(ctx, http.MethodGet, ruta, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
