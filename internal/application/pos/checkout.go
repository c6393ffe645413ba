package pos

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panaderito-pos/internal/application/dto"
	"github.com/tu-usuario/panaderito-pos/internal/domain"
	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderito-pos/internal/store"
	"github.com/tu-usuario/panaderito-pos/pkg/logger"
)

// ServicioVentas registra ventas en el backend.
type ServicioVentas interface {
	Realizar(ctx context.Context, req dto.VentaRequest) (*entity.Venta, error)
}

// CatalogoSucursal entrega el catálogo consolidado de una sucursal.
type CatalogoSucursal interface {
	Consolidados(ctx context.Context, idSucursal int64) ([]entity.ProductoConsolidado, error)
}

// ServicioClientes entrega los clientes activos.
type ServicioClientes interface {
	Activos(ctx context.Context) ([]entity.Cliente, error)
}

// ResultadoVenta es lo que queda tras una venta concretada: la respuesta del
// backend y el snapshot del payload enviado, con el que se imprime el recibo.
type ResultadoVenta struct {
	Venta     *entity.Venta
	Solicitud dto.VentaRequest
	Cliente   *entity.Cliente
}

// Checkout orquesta el cobro de un terminal: precondiciones, verificación
// optimista de stock contra la caché, armado determinista del payload, envío
// único y refetch secuencial de catálogo y clientes tras el éxito.
type Checkout struct {
	ventas       ServicioVentas
	catalogo     CatalogoSucursal
	clientesSrv  ServicioClientes
	productos    *store.Recurso[entity.ProductoConsolidado]
	clientes     *store.Recurso[entity.Cliente]
	carrito      *Carrito
	idSucursal   int64
	idCajaSesion int64
	cliente      *entity.Cliente
	log          *logger.Logger
}

// NewCheckout arma el flujo de cobro para una sucursal y sesión de caja.
func NewCheckout(
	ventas ServicioVentas,
	catalogo CatalogoSucursal,
	clientesSrv ServicioClientes,
	productos *store.Recurso[entity.ProductoConsolidado],
	clientes *store.Recurso[entity.Cliente],
	idSucursal, idCajaSesion int64,
	log *logger.Logger,
) *Checkout {
	if log == nil {
		log = logger.Nop()
	}
	return &Checkout{
		ventas:       ventas,
		catalogo:     catalogo,
		clientesSrv:  clientesSrv,
		productos:    productos,
		clientes:     clientes,
		carrito:      NuevoCarrito(),
		idSucursal:   idSucursal,
		idCajaSesion: idCajaSesion,
		log:          log,
	}
}

// Carrito expone el carrito de la venta en curso.
func (ck *Checkout) Carrito() *Carrito { return ck.carrito }

// Cliente devuelve el cliente seleccionado, o nil para venta anónima.
func (ck *Checkout) Cliente() *entity.Cliente { return ck.cliente }

// SeleccionarCliente fija el cliente de la venta; nil significa anónimo.
func (ck *Checkout) SeleccionarCliente(c *entity.Cliente) {
	ck.cliente = c
}

// Cargar trae catálogo consolidado y clientes activos para la pantalla.
func (ck *Checkout) Cargar(ctx context.Context) error {
	if err := ck.productos.Refrescar(ctx, ck.fetchProductos); err != nil {
		return err
	}
	return ck.clientes.Refrescar(ctx, ck.clientesSrv.Activos)
}

// Pagar verifica las precondiciones antes de abrir la división de pagos:
// carrito con productos y, si hay cliente elegido, que tenga id del servidor.
func (ck *Checkout) Pagar() error {
	if ck.carrito.Vacio() {
		return fmt.Errorf("%w: agrega productos antes de pagar", domain.ErrCarritoVacio)
	}
	if ck.cliente != nil && ck.cliente.ID == 0 {
		return fmt.Errorf("%w: seleccione el cliente nuevamente", domain.ErrClienteInvalido)
	}
	return nil
}

// ConfirmarVenta cierra la venta con los métodos de pago ya validados:
// re-verifica cobertura (defensa contra estado de pago viejo), chequea el
// stock cacheado línea por línea y aborta sin efectos ante cualquier
// faltante, arma el payload y lo envía una sola vez. Tras el éxito limpia el
// carrito y refresca catálogo y clientes, en ese orden estricto. Si el envío
// falla, carrito y selección quedan intactos para reintentar.
func (ck *Checkout) ConfirmarVenta(ctx context.Context, metodos []entity.MetodoPago) (*ResultadoVenta, error) {
	if err := ck.Pagar(); err != nil {
		return nil, err
	}
	if len(metodos) == 0 {
		return nil, domain.ErrListaPagosVacia
	}

	total := ck.carrito.Total()
	suma := sumaMetodos(metodos)
	if suma.LessThan(total) {
		return nil, fmt.Errorf(
			"%w: el monto total de pago (%s) es menor al total de la venta (%s)",
			domain.ErrPagoInsuficiente, suma.StringFixed(2), total.StringFixed(2),
		)
	}

	lineas := ck.carrito.Lineas()
	for _, l := range lineas {
		consolidado, ok := ck.productos.PorID(l.IDProducto)
		if !ok || consolidado.TotalStock < l.Cantidad {
			return nil, fmt.Errorf("%w para el producto: %s", domain.ErrStockInsuficiente, l.Nombre)
		}
	}

	req := ck.armarSolicitud(lineas, metodos)

	venta, err := ck.ventas.Realizar(ctx, req)
	if err != nil {
		ck.log.Warn().Err(err).Msg("venta rechazada")
		return nil, err
	}

	ck.log.Info().Int64("caja_sesion", ck.idCajaSesion).Str("total", req.Total.StringFixed(2)).Msg("venta realizada")

	resultado := &ResultadoVenta{Venta: venta, Solicitud: req, Cliente: ck.cliente}

	// Estado transitorio fuera y cachés al día: primero catálogo (stock
	// nuevo), después clientes, cada refetch esperando al anterior. Un
	// fallo aquí no deshace la venta; queda anotado en la caché.
	ck.carrito.Limpiar()
	ck.cliente = nil
	if err := ck.productos.Refrescar(ctx, ck.fetchProductos); err != nil {
		ck.log.Warn().Err(err).Msg("no se pudo refrescar el catálogo")
	}
	if err := ck.clientes.Refrescar(ctx, ck.clientesSrv.Activos); err != nil {
		ck.log.Warn().Err(err).Msg("no se pudo refrescar clientes")
	}

	return resultado, nil
}

// armarSolicitud construye el payload de la venta de forma determinista:
// cliente (o null), sesión de caja, una línea por producto con snapshots de
// nombre y precio, los métodos de pago y el total calculado del carrito.
func (ck *Checkout) armarSolicitud(lineas []LineaCarrito, metodos []entity.MetodoPago) dto.VentaRequest {
	detalles := make([]dto.DetalleVentaRequest, 0, len(lineas))
	for _, l := range lineas {
		detalles = append(detalles, dto.DetalleVentaRequest{
			IDProducto:     l.IDProducto,
			Cantidad:       l.Cantidad,
			NombreProducto: l.Nombre,
			PrecioVenta:    l.PrecioVenta,
		})
	}

	req := dto.VentaRequest{
		IDCajaSesion: ck.idCajaSesion,
		Detalles:     detalles,
		MetodosPago:  metodos,
		Total:        ck.carrito.Total(),
	}
	if ck.cliente != nil {
		id := ck.cliente.ID
		req.IDCliente = &id
		req.Cliente = ck.cliente
	}
	return req
}

func (ck *Checkout) fetchProductos(ctx context.Context) ([]entity.ProductoConsolidado, error) {
	return ck.catalogo.Consolidados(ctx, ck.idSucursal)
}

func sumaMetodos(metodos []entity.MetodoPago) decimal.Decimal {
	suma := decimal.Zero
	for _, m := range metodos {
		suma = suma.Add(m.Monto)
	}
	return suma
}
