package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tu-usuario/panaderito-pos/internal/application/dto"
	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

// Ventas opera sobre /venta: registrar una venta y consultar el histórico.
type Ventas struct {
	c *Client
}

// NewVentas construye el recurso de ventas.
func NewVentas(c *Client) *Ventas { return &Ventas{c: c} }

// Realizar envía la venta armada por el checkout. Una sola llamada, sin
// reintentos: la idempotencia es responsabilidad del backend.
func (v *Ventas) Realizar(ctx context.Context, req dto.VentaRequest) (*entity.Venta, error) {
	var venta entity.Venta
	if err := v.c.hacer(ctx, http.MethodPost, "/venta", req, &venta); err != nil {
		return nil, err
	}
	return &venta, nil
}

// Listar devuelve el histórico de ventas.
func (v *Ventas) Listar(ctx context.Context) ([]entity.Venta, error) {
	var ventas []entity.Venta
	if err := v.c.hacer(ctx, http.MethodGet, "/venta", nil, &ventas); err != nil {
		return nil, err
	}
	return ventas, nil
}

// PorID devuelve una venta con sus detalles (detalleVentaList).
func (v *Ventas) PorID(ctx context.Context, id int64) (*entity.Venta, error) {
	var venta entity.Venta
	if err := v.c.hacer(ctx, http.MethodGet, fmt.Sprintf("/venta/%d", id), nil, &venta); err != nil {
		return nil, err
	}
	return &venta, nil
}
