package pos

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panaderito-pos/internal/domain"
	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

// LineaPago es una línea de pago en edición: el monto se guarda como texto
// crudo mientras el operador tipea y se normaliza a dos decimales al salir
// del campo.
type LineaPago struct {
	TipoPago string
	Monto    string
	Detalles string
}

// DivisionPago junta una o más líneas de pago contra el total requerido,
// calcula el cambio y valida la cobertura antes de permitir confirmar.
type DivisionPago struct {
	lineas []LineaPago
	err    error // último error de validación; se reemplaza en cada intento
}

// NuevaDivisionPago arranca con una sola línea EFECTIVO vacía.
func NuevaDivisionPago() *DivisionPago {
	d := &DivisionPago{}
	d.Reiniciar()
	return d
}

// Reiniciar vuelve al estado inicial: una línea EFECTIVO, sin monto ni
// detalles, sin error.
func (d *DivisionPago) Reiniciar() {
	d.lineas = []LineaPago{{TipoPago: entity.TipoPagoEfectivo}}
	d.err = nil
}

// Lineas devuelve una copia de las líneas actuales.
func (d *DivisionPago) Lineas() []LineaPago {
	return append([]LineaPago(nil), d.lineas...)
}

// AgregarLinea añade una línea nueva, por defecto TARJETA. Sin tope de líneas.
func (d *DivisionPago) AgregarLinea() {
	d.lineas = append(d.lineas, LineaPago{TipoPago: entity.TipoPagoTarjeta})
}

// EliminarLinea quita cualquier línea, la primera incluida; que la primera
// no se pueda quitar es una restricción de pantalla, no del dato.
func (d *DivisionPago) EliminarLinea(i int) {
	if i < 0 || i >= len(d.lineas) {
		return
	}
	d.lineas = append(d.lineas[:i], d.lineas[i+1:]...)
}

// ReabrirInvalidas vacía el monto de las líneas que no pasarían la
// validación (monto ilegible o ≤ 0, o detalles en blanco en métodos que no
// son en efectivo) para que la pantalla vuelva a pedirlas. Devuelve cuántas
// líneas quedaron pendientes.
func (d *DivisionPago) ReabrirInvalidas() int {
	reabiertas := 0
	for i, l := range d.lineas {
		monto, ok := parseMontoEstricto(l.Monto)
		faltaDetalle := l.TipoPago != entity.TipoPagoEfectivo && strings.TrimSpace(l.Detalles) == ""
		if !ok || monto.LessThanOrEqual(decimal.Zero) || faltaDetalle {
			d.lineas[i].Monto = ""
			reabiertas++
		}
	}
	return reabiertas
}

// SetTipo cambia el método de pago de una línea.
func (d *DivisionPago) SetTipo(i int, tipo string) {
	if i < 0 || i >= len(d.lineas) {
		return
	}
	d.lineas[i].TipoPago = tipo
}

// SetMonto guarda el texto tal cual lo tipeó el operador.
func (d *DivisionPago) SetMonto(i int, crudo string) {
	if i < 0 || i >= len(d.lineas) {
		return
	}
	d.lineas[i].Monto = crudo
}

// SetDetalles guarda el detalle libre de la línea.
func (d *DivisionPago) SetDetalles(i int, detalles string) {
	if i < 0 || i >= len(d.lineas) {
		return
	}
	d.lineas[i].Detalles = detalles
}

// NormalizarMonto re-serializa el monto de la línea a dos decimales al salir
// del campo; texto inválido o vacío queda en "0.00".
func (d *DivisionPago) NormalizarMonto(i int) {
	if i < 0 || i >= len(d.lineas) {
		return
	}
	d.lineas[i].Monto = parseMonto(d.lineas[i].Monto).StringFixed(2)
}

// Cambio devuelve max(0, suma de montos - total) formateado a dos decimales.
// Se recalcula en cada consulta; los montos ilegibles cuentan como 0.
func (d *DivisionPago) Cambio(total decimal.Decimal) string {
	suma := d.suma()
	if suma.GreaterThan(total) {
		return suma.Sub(total).StringFixed(2)
	}
	return "0.00"
}

// UltimoError devuelve el error del último intento de confirmación; es el
// mensaje persistente de la pantalla y se reemplaza (no acumula) por intento.
func (d *DivisionPago) UltimoError() error { return d.err }

// Confirmar valida las líneas contra el total, en orden y cortando en la
// primera falla: lista vacía, monto inválido, cobertura insuficiente,
// detalles faltantes en pagos que no son en efectivo. Si todo pasa, emite
// los métodos de pago con montos ya numéricos y se reinicia.
func (d *DivisionPago) Confirmar(total decimal.Decimal) ([]entity.MetodoPago, error) {
	metodos, err := d.validar(total)
	d.err = err
	if err != nil {
		return nil, err
	}
	d.Reiniciar()
	return metodos, nil
}

func (d *DivisionPago) validar(total decimal.Decimal) ([]entity.MetodoPago, error) {
	if len(d.lineas) == 0 {
		return nil, domain.ErrListaPagosVacia
	}

	for _, l := range d.lineas {
		monto, ok := parseMontoEstricto(l.Monto)
		if !ok || monto.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrMontoInvalido
		}
	}

	suma := d.suma()
	if suma.LessThan(total) {
		return nil, fmt.Errorf(
			"%w: el total de los métodos de pago (%s) no cubre el total de la venta (%s)",
			domain.ErrPagoInsuficiente, suma.StringFixed(2), total.StringFixed(2),
		)
	}

	for _, l := range d.lineas {
		if l.TipoPago != entity.TipoPagoEfectivo && strings.TrimSpace(l.Detalles) == "" {
			return nil, fmt.Errorf(
				"%w: debe proporcionar detalles para el pago con %s",
				domain.ErrDetallesFaltantes, l.TipoPago,
			)
		}
	}

	metodos := make([]entity.MetodoPago, 0, len(d.lineas))
	for _, l := range d.lineas {
		metodos = append(metodos, entity.MetodoPago{
			TipoPago: l.TipoPago,
			Monto:    parseMonto(l.Monto),
			Detalles: l.Detalles,
		})
	}
	return metodos, nil
}

func (d *DivisionPago) suma() decimal.Decimal {
	suma := decimal.Zero
	for _, l := range d.lineas {
		suma = suma.Add(parseMonto(l.Monto))
	}
	return suma
}

// parseMonto interpreta el texto como número; inválido o vacío vale 0.
func parseMonto(crudo string) decimal.Decimal {
	m, ok := parseMontoEstricto(crudo)
	if !ok {
		return decimal.Zero
	}
	return m
}

// parseMontoEstricto distingue ilegible de cero para la validación.
func parseMontoEstricto(crudo string) (decimal.Decimal, bool) {
	crudo = strings.TrimSpace(crudo)
	if crudo == "" {
		return decimal.Zero, false
	}
	if _, err := strconv.ParseFloat(crudo, 64); err != nil {
		return decimal.Zero, false
	}
	m, err := decimal.NewFromString(crudo)
	if err != nil {
		return decimal.Zero, false
	}
	return m, true
}
