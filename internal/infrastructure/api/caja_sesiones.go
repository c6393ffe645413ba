package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

// CajaSesiones opera sobre /caja-sesion: apertura y cierre de sesiones de caja.
type CajaSesiones struct {
	c *Client
}

// NewCajaSesiones construye el recurso de sesiones de caja.
func NewCajaSesiones(c *Client) *CajaSesiones { return &CajaSesiones{c: c} }

// aperturaRequest payload de apertura de sesión.
type aperturaRequest struct {
	IDCaja       int64           `json:"id_caja"`
	SaldoInicial decimal.Decimal `json:"saldoInicial"`
}

// Abrir abre una sesión sobre una caja con el saldo inicial contado.
func (s *CajaSesiones) Abrir(ctx context.Context, idCaja int64, saldoInicial decimal.Decimal) (*entity.CajaSesion, error) {
	var sesion entity.CajaSesion
	req := aperturaRequest{IDCaja: idCaja, SaldoInicial: saldoInicial}
	if err := s.c.hacer(ctx, http.MethodPost, "/caja-sesion", req, &sesion); err != nil {
		return nil, err
	}
	return &sesion, nil
}

// Cierre dispara el balance de fin de sesión en el backend y devuelve la
// sesión con saldo inicial y final. Si falla, la sesión queda abierta y el
// operador puede reintentar.
func (s *CajaSesiones) Cierre(ctx context.Context, idSesion int64) (*entity.CajaSesion, error) {
	var sesion entity.CajaSesion
	ruta := fmt.Sprintf("/caja-sesion/%d/cierre", idSesion)
	if err := s.c.hacer(ctx, http.MethodPatch, ruta, nil, &sesion); err != nil {
		return nil, err
	}
	return &sesion, nil
}
