package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Caja representa una caja registradora de una sucursal.
type Caja struct {
	ID       int64     `json:"id"`
	Nombre   string    `json:"nombre"`
	Sucursal *Sucursal `json:"sucursal,omitempty"`
	Activo   bool      `json:"activo"`
}

// CajaSesion representa una sesión de caja (apertura a cierre). El saldo
// final solo llega poblado después del cierre; el total vendido se deriva
// client-side como SaldoFinal - SaldoInicial.
type CajaSesion struct {
	ID                int64           `json:"id"`
	FechaHoraApertura time.Time       `json:"fechaHoraApertura"`
	FechaHoraCierre   *time.Time      `json:"fechaHoraCierre,omitempty"`
	SaldoInicial      decimal.Decimal `json:"saldoInicial"`
	SaldoFinal        decimal.Decimal `json:"saldoFinal"`
	Caja              *Caja           `json:"caja,omitempty"`
	Usuario           *Usuario        `json:"usuario,omitempty"`
}
