package pos_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panaderito-pos/internal/application/pos"
	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

type cajaFalsa struct {
	sesion *entity.CajaSesion
	err    error
	ids    []int64
}

func (c *cajaFalsa) Cierre(_ context.Context, idSesion int64) (*entity.CajaSesion, error) {
	c.ids = append(c.ids, idSesion)
	if c.err != nil {
		return nil, c.err
	}
	return c.sesion, nil
}

func TestCierreCaja_DerivaTotalVentas(t *testing.T) {
	apertura := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	caja := &cajaFalsa{sesion: &entity.CajaSesion{
		ID:                9,
		FechaHoraApertura: apertura,
		SaldoInicial:      decimal.RequireFromString("200.00"),
		SaldoFinal:        decimal.RequireFromString("750.50"),
	}}

	balance, err := pos.NewCierreCaja(caja).Cerrar(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, apertura, balance.FechaHoraApertura)
	assert.Equal(t, "200.00", balance.SaldoInicial.StringFixed(2))
	assert.Equal(t, "750.50", balance.SaldoFinal.StringFixed(2))
	assert.Equal(t, "550.50", balance.TotalVentas.StringFixed(2), "saldoFinal - saldoInicial")
	assert.Equal(t, []int64{9}, caja.ids, "una sola llamada, con el id de la sesión")
}

func TestCierreCaja_FalloPermiteReintentar(t *testing.T) {
	caja := &cajaFalsa{err: errors.New("la caja tiene ventas sin consolidar")}
	cierre := pos.NewCierreCaja(caja)

	_, err := cierre.Cerrar(context.Background(), 9)
	require.Error(t, err)

	// El backend se recupera y el reintento cierra normalmente
	caja.err = nil
	caja.sesion = &entity.CajaSesion{
		SaldoInicial: decimal.RequireFromString("100.00"),
		SaldoFinal:   decimal.RequireFromString("100.00"),
	}
	balance, err := cierre.Cerrar(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "0.00", balance.TotalVentas.StringFixed(2))
}
