package pos

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

// ServicioCaja dispara el cierre de una sesión de caja en el backend.
type ServicioCaja interface {
	Cierre(ctx context.Context, idSesion int64) (*entity.CajaSesion, error)
}

// BalanceCaja es lo que muestra la pantalla de cierre: los saldos que
// devolvió el backend y el total vendido derivado client-side.
type BalanceCaja struct {
	FechaHoraApertura time.Time
	SaldoInicial      decimal.Decimal
	SaldoFinal        decimal.Decimal
	TotalVentas       decimal.Decimal
}

// CierreCaja cierra la sesión de caja. Una sola llamada por intento; si el
// backend falla, la sesión sigue abierta y se puede reintentar.
type CierreCaja struct {
	caja ServicioCaja
}

// NewCierreCaja construye el flujo de cierre.
func NewCierreCaja(caja ServicioCaja) *CierreCaja {
	return &CierreCaja{caja: caja}
}

// Cerrar ejecuta el balance de fin de sesión y deriva el total vendido como
// saldoFinal - saldoInicial.
func (cc *CierreCaja) Cerrar(ctx context.Context, idSesion int64) (*BalanceCaja, error) {
	sesion, err := cc.caja.Cierre(ctx, idSesion)
	if err != nil {
		return nil, err
	}
	return &BalanceCaja{
		FechaHoraApertura: sesion.FechaHoraApertura,
		SaldoInicial:      sesion.SaldoInicial,
		SaldoFinal:        sesion.SaldoFinal,
		TotalVentas:       sesion.SaldoFinal.Sub(sesion.SaldoInicial),
	}, nil
}
