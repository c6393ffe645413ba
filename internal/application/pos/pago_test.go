package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panaderito-pos/internal/application/pos"
	"github.com/tu-usuario/panaderito-pos/internal/domain"
	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

func TestDivisionPago_EstadoInicial(t *testing.T) {
	d := pos.NuevaDivisionPago()

	lineas := d.Lineas()
	require.Len(t, lineas, 1, "arranca con una sola línea")
	assert.Equal(t, entity.TipoPagoEfectivo, lineas[0].TipoPago)
	assert.Empty(t, lineas[0].Monto)
	assert.Empty(t, lineas[0].Detalles)
}

func TestDivisionPago_AgregarLineaDefaultTarjeta(t *testing.T) {
	d := pos.NuevaDivisionPago()
	d.AgregarLinea()

	lineas := d.Lineas()
	require.Len(t, lineas, 2)
	assert.Equal(t, entity.TipoPagoTarjeta, lineas[1].TipoPago)
}

func TestDivisionPago_EliminarCualquierLinea(t *testing.T) {
	// Quitar la primera línea está permitido en el dato; que la pantalla no
	// lo ofrezca es otra cosa.
	d := pos.NuevaDivisionPago()
	d.AgregarLinea()
	d.EliminarLinea(0)

	lineas := d.Lineas()
	require.Len(t, lineas, 1)
	assert.Equal(t, entity.TipoPagoTarjeta, lineas[0].TipoPago)

	d.EliminarLinea(0)
	assert.Empty(t, d.Lineas())

	// Índices fuera de rango no hacen nada
	d.EliminarLinea(-1)
	d.EliminarLinea(5)
}

func TestDivisionPago_NormalizarMonto(t *testing.T) {
	d := pos.NuevaDivisionPago()

	d.SetMonto(0, "50")
	d.NormalizarMonto(0)
	assert.Equal(t, "50.00", d.Lineas()[0].Monto)

	d.SetMonto(0, "12.345")
	d.NormalizarMonto(0)
	assert.Equal(t, "12.35", d.Lineas()[0].Monto, "redondea a dos decimales")

	d.SetMonto(0, "abc")
	d.NormalizarMonto(0)
	assert.Equal(t, "0.00", d.Lineas()[0].Monto, "texto inválido queda en 0")

	d.SetMonto(0, "")
	d.NormalizarMonto(0)
	assert.Equal(t, "0.00", d.Lineas()[0].Monto, "vacío queda en 0")
}

func TestDivisionPago_Cambio(t *testing.T) {
	total := decimal.RequireFromString("42.50")

	d := pos.NuevaDivisionPago()
	d.SetMonto(0, "50.00")
	assert.Equal(t, "7.50", d.Cambio(total))

	d.SetMonto(0, "40.00")
	assert.Equal(t, "0.00", d.Cambio(total), "nunca negativo")

	d.SetMonto(0, "42.50")
	assert.Equal(t, "0.00", d.Cambio(total))
}

func TestDivisionPago_ConfirmarDivisionValida(t *testing.T) {
	// total=100.00, EFECTIVO 60 + TARJETA 40 con autorización
	total := decimal.RequireFromString("100.00")
	d := pos.NuevaDivisionPago()
	d.SetMonto(0, "60.00")
	d.AgregarLinea()
	d.SetMonto(1, "40.00")
	d.SetDetalles(1, "auth#123")

	assert.Equal(t, "0.00", d.Cambio(total))

	metodos, err := d.Confirmar(total)
	require.NoError(t, err)
	require.Len(t, metodos, 2)
	assert.Equal(t, entity.TipoPagoEfectivo, metodos[0].TipoPago)
	assert.True(t, metodos[0].Monto.Equal(decimal.RequireFromString("60.00")), "montos emitidos como número")
	assert.Equal(t, "auth#123", metodos[1].Detalles)

	// Tras confirmar se vuelve al estado inicial
	lineas := d.Lineas()
	require.Len(t, lineas, 1)
	assert.Equal(t, entity.TipoPagoEfectivo, lineas[0].TipoPago)
	assert.Empty(t, lineas[0].Monto)
	assert.NoError(t, d.UltimoError())
}

func TestDivisionPago_ConfirmarListaVacia(t *testing.T) {
	d := pos.NuevaDivisionPago()
	d.EliminarLinea(0)

	_, err := d.Confirmar(decimal.RequireFromString("10.00"))
	assert.ErrorIs(t, err, domain.ErrListaPagosVacia)
}

func TestDivisionPago_ConfirmarMontoInvalido(t *testing.T) {
	total := decimal.RequireFromString("10.00")

	casos := []string{"", "abc", "0", "-5"}
	for _, monto := range casos {
		d := pos.NuevaDivisionPago()
		d.SetMonto(0, monto)
		_, err := d.Confirmar(total)
		assert.ErrorIs(t, err, domain.ErrMontoInvalido, "monto %q", monto)
	}
}

func TestDivisionPago_ConfirmarCoberturaInsuficiente(t *testing.T) {
	total := decimal.RequireFromString("42.50")
	d := pos.NuevaDivisionPago()
	d.SetMonto(0, "40.00")

	_, err := d.Confirmar(total)
	require.ErrorIs(t, err, domain.ErrPagoInsuficiente)
	// El mensaje incluye ambas cifras a dos decimales
	assert.Contains(t, err.Error(), "40.00")
	assert.Contains(t, err.Error(), "42.50")
}

func TestDivisionPago_ConfirmarDetallesFaltantes(t *testing.T) {
	// total=100.00, una sola línea TARJETA sin detalles
	total := decimal.RequireFromString("100.00")
	d := pos.NuevaDivisionPago()
	d.SetTipo(0, entity.TipoPagoTarjeta)
	d.SetMonto(0, "100.00")

	_, err := d.Confirmar(total)
	require.ErrorIs(t, err, domain.ErrDetallesFaltantes)
	assert.Contains(t, err.Error(), entity.TipoPagoTarjeta)

	// Detalles de solo espacios tampoco sirven
	d.SetDetalles(0, "   ")
	_, err = d.Confirmar(total)
	assert.ErrorIs(t, err, domain.ErrDetallesFaltantes)
}

func TestDivisionPago_ReabrirInvalidasVaciaSoloLasQueFallan(t *testing.T) {
	// Un monto tipeado como "abc" se normaliza a "0.00"; tras el rechazo la
	// línea vuelve a quedar pendiente para que la pantalla la pida de nuevo,
	// sin tocar las líneas válidas.
	total := decimal.RequireFromString("20.00")
	d := pos.NuevaDivisionPago()
	d.SetMonto(0, "abc")
	d.NormalizarMonto(0)
	d.AgregarLinea()
	d.SetMonto(1, "20.00")
	d.SetDetalles(1, "auth#123")

	_, err := d.Confirmar(total)
	require.ErrorIs(t, err, domain.ErrMontoInvalido)

	assert.Equal(t, 1, d.ReabrirInvalidas())
	lineas := d.Lineas()
	assert.Empty(t, lineas[0].Monto, "la línea inválida queda pendiente")
	assert.Equal(t, "20.00", lineas[1].Monto, "la línea válida se conserva")

	// Reingresado el monto, el mismo intento ahora pasa
	d.SetMonto(0, "5")
	d.NormalizarMonto(0)
	metodos, err := d.Confirmar(total)
	require.NoError(t, err)
	assert.Len(t, metodos, 2)
}

func TestDivisionPago_ReabrirInvalidasCubreDetallesFaltantes(t *testing.T) {
	d := pos.NuevaDivisionPago()
	d.SetMonto(0, "10.00")
	d.AgregarLinea()
	d.SetMonto(1, "30.00") // TARJETA sin detalles

	assert.Equal(t, 1, d.ReabrirInvalidas())
	lineas := d.Lineas()
	assert.Equal(t, "10.00", lineas[0].Monto)
	assert.Empty(t, lineas[1].Monto, "se vuelve a pedir monto y detalles juntos")
}

func TestDivisionPago_ReabrirInvalidasSinCulpables(t *testing.T) {
	// Cobertura insuficiente con montos válidos: nada que reabrir, el
	// operador decide (agregar línea, editar o cancelar).
	d := pos.NuevaDivisionPago()
	d.SetMonto(0, "40.00")

	_, err := d.Confirmar(decimal.RequireFromString("42.50"))
	require.ErrorIs(t, err, domain.ErrPagoInsuficiente)
	assert.Zero(t, d.ReabrirInvalidas())
	assert.Equal(t, "40.00", d.Lineas()[0].Monto)
}

func TestDivisionPago_OrdenDeValidacion(t *testing.T) {
	// Falla primero el monto inválido aunque también falten detalles:
	// la validación corta en el primer error, sin acumular.
	total := decimal.RequireFromString("50.00")
	d := pos.NuevaDivisionPago()
	d.SetTipo(0, entity.TipoPagoTarjeta)
	d.SetMonto(0, "no-numerico")

	_, err := d.Confirmar(total)
	assert.ErrorIs(t, err, domain.ErrMontoInvalido)
}

func TestDivisionPago_ErrorSeReemplazaPorIntento(t *testing.T) {
	total := decimal.RequireFromString("50.00")
	d := pos.NuevaDivisionPago()

	_, err := d.Confirmar(total)
	require.ErrorIs(t, err, domain.ErrMontoInvalido)
	assert.ErrorIs(t, d.UltimoError(), domain.ErrMontoInvalido)

	d.SetMonto(0, "20.00")
	_, err = d.Confirmar(total)
	require.ErrorIs(t, err, domain.ErrPagoInsuficiente)
	// El mensaje anterior fue reemplazado, no acumulado
	assert.ErrorIs(t, d.UltimoError(), domain.ErrPagoInsuficiente)
	assert.NotErrorIs(t, d.UltimoError(), domain.ErrMontoInvalido)
}
