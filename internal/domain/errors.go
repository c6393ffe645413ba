package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes son los que ve
// el operador del terminal; los flujos los envuelven con fmt.Errorf("%w: ...")
// para añadir cifras o nombres y se distinguen con errors.Is.
var (
	// Transporte / backend
	ErrNoEncontrado      = errors.New("recurso no encontrado")
	ErrNoAutorizado      = errors.New("no autorizado")
	ErrRespuestaInvalida = errors.New("respuesta del servidor inválida")

	// Validación del punto de venta (detectada antes de cualquier llamada de red)
	ErrCarritoVacio      = errors.New("el carrito está vacío")
	ErrClienteInvalido   = errors.New("el cliente seleccionado no tiene un ID válido")
	ErrListaPagosVacia   = errors.New("debe agregar al menos un método de pago")
	ErrMontoInvalido     = errors.New("todos los montos deben ser números válidos mayores a 0")
	ErrPagoInsuficiente  = errors.New("el pago no cubre el total de la venta")
	ErrDetallesFaltantes = errors.New("faltan detalles del método de pago")
	ErrStockInsuficiente = errors.New("stock insuficiente")
)
