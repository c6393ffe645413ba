package pos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panaderito-pos/internal/application/dto"
	"github.com/tu-usuario/panaderito-pos/internal/application/pos"
	"github.com/tu-usuario/panaderito-pos/internal/domain"
	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderito-pos/internal/store"
)

// backendFalso implementa los puertos del checkout en memoria y anota el
// orden de las llamadas para verificar la secuencia post-venta.
type backendFalso struct {
	consolidados []entity.ProductoConsolidado
	clientes     []entity.Cliente
	errVenta     error
	solicitudes  []dto.VentaRequest
	llamadas     []string
}

func (b *backendFalso) Realizar(_ context.Context, req dto.VentaRequest) (*entity.Venta, error) {
	b.llamadas = append(b.llamadas, "venta")
	if b.errVenta != nil {
		return nil, b.errVenta
	}
	b.solicitudes = append(b.solicitudes, req)
	return &entity.Venta{ID: 77, Total: req.Total}, nil
}

func (b *backendFalso) Consolidados(_ context.Context, _ int64) ([]entity.ProductoConsolidado, error) {
	b.llamadas = append(b.llamadas, "productos")
	return b.consolidados, nil
}

func (b *backendFalso) Activos(_ context.Context) ([]entity.Cliente, error) {
	b.llamadas = append(b.llamadas, "clientes")
	return b.clientes, nil
}

func nuevoCheckoutDePrueba(t *testing.T, backend *backendFalso) *pos.Checkout {
	t.Helper()
	productos := store.NuevoRecurso(func(p entity.ProductoConsolidado) int64 { return p.Producto.ID })
	clientes := store.NuevoRecurso(func(c entity.Cliente) int64 { return c.ID })
	ck := pos.NewCheckout(backend, backend, backend, productos, clientes, 1, 33, nil)
	require.NoError(t, ck.Cargar(context.Background()))
	backend.llamadas = nil // lo que importa es la secuencia post-venta
	return ck
}

func backendConStock() *backendFalso {
	return &backendFalso{
		consolidados: []entity.ProductoConsolidado{
			{Producto: productoDePrueba(7, "Pan francés", "0.50"), TotalStock: 3},
			{Producto: productoDePrueba(8, "Torta", "35.00"), TotalStock: 10},
		},
		clientes: []entity.Cliente{{ID: 4, Nombre: "María", Activo: true}},
	}
}

func pagoExacto(total string) []entity.MetodoPago {
	return []entity.MetodoPago{{TipoPago: entity.TipoPagoEfectivo, Monto: decimal.RequireFromString(total)}}
}

func TestCheckout_PagarConCarritoVacio(t *testing.T) {
	ck := nuevoCheckoutDePrueba(t, backendConStock())
	assert.ErrorIs(t, ck.Pagar(), domain.ErrCarritoVacio)
}

func TestCheckout_PagarConClienteSinID(t *testing.T) {
	ck := nuevoCheckoutDePrueba(t, backendConStock())
	ck.Carrito().Agregar(productoDePrueba(8, "Torta", "35.00"))
	ck.SeleccionarCliente(&entity.Cliente{Nombre: "sin id"})

	assert.ErrorIs(t, ck.Pagar(), domain.ErrClienteInvalido)

	ck.SeleccionarCliente(nil)
	assert.NoError(t, ck.Pagar(), "anónimo es válido")
}

func TestCheckout_StockInsuficienteAbortaSinLlamarAlBackend(t *testing.T) {
	// carrito: 5 × producto 7, stock cacheado = 3
	backend := backendConStock()
	ck := nuevoCheckoutDePrueba(t, backend)
	ck.Carrito().Agregar(productoDePrueba(7, "Pan francés", "0.50"))
	ck.Carrito().SetCantidad(7, 5)

	_, err := ck.ConfirmarVenta(context.Background(), pagoExacto("2.50"))
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Contains(t, err.Error(), "Pan francés", "nombra el producto en falta")
	assert.Empty(t, backend.llamadas, "no hubo ninguna llamada de red")
	assert.False(t, ck.Carrito().Vacio(), "el carrito queda intacto")
}

func TestCheckout_ProductoFueraDeCatalogoCuentaComoSinStock(t *testing.T) {
	backend := backendConStock()
	ck := nuevoCheckoutDePrueba(t, backend)
	ck.Carrito().Agregar(productoDePrueba(99, "Fantasma", "1.00"))

	_, err := ck.ConfirmarVenta(context.Background(), pagoExacto("1.00"))
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
}

func TestCheckout_CoberturaSeRevalidaIndependiente(t *testing.T) {
	// Defensa contra estado de pago viejo: aunque los métodos vengan ya
	// "validados", el checkout vuelve a comparar contra el total.
	ck := nuevoCheckoutDePrueba(t, backendConStock())
	ck.Carrito().Agregar(productoDePrueba(8, "Torta", "35.00"))

	_, err := ck.ConfirmarVenta(context.Background(), pagoExacto("10.00"))
	require.ErrorIs(t, err, domain.ErrPagoInsuficiente)
	assert.Contains(t, err.Error(), "10.00")
	assert.Contains(t, err.Error(), "35.00")

	_, err = ck.ConfirmarVenta(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrListaPagosVacia)
}

func TestCheckout_VentaExitosa(t *testing.T) {
	backend := backendConStock()
	ck := nuevoCheckoutDePrueba(t, backend)
	ck.Carrito().Agregar(productoDePrueba(7, "Pan francés", "0.50"))
	ck.Carrito().SetCantidad(7, 2)
	ck.Carrito().Agregar(productoDePrueba(8, "Torta", "35.00"))
	cliente := entity.Cliente{ID: 4, Nombre: "María"}
	ck.SeleccionarCliente(&cliente)

	metodos := []entity.MetodoPago{
		{TipoPago: entity.TipoPagoEfectivo, Monto: decimal.RequireFromString("6.00")},
		{TipoPago: entity.TipoPagoTarjeta, Monto: decimal.RequireFromString("30.00"), Detalles: "auth#123"},
	}

	resultado, err := ck.ConfirmarVenta(context.Background(), metodos)
	require.NoError(t, err)
	require.NotNil(t, resultado.Venta)
	assert.Equal(t, int64(77), resultado.Venta.ID)

	// Payload determinista: cliente, sesión, snapshots y total
	req := resultado.Solicitud
	require.NotNil(t, req.IDCliente)
	assert.Equal(t, int64(4), *req.IDCliente)
	assert.Equal(t, int64(33), req.IDCajaSesion)
	require.Len(t, req.Detalles, 2)
	assert.Equal(t, "Pan francés", req.Detalles[0].NombreProducto)
	assert.Equal(t, 2, req.Detalles[0].Cantidad)
	assert.Equal(t, "36.00", req.Total.StringFixed(2))

	// Tras el éxito: carrito limpio, selección fuera y refetch en orden
	// estricto (venta → productos → clientes)
	assert.True(t, ck.Carrito().Vacio())
	assert.Nil(t, ck.Cliente())
	assert.Equal(t, []string{"venta", "productos", "clientes"}, backend.llamadas)
}

func TestCheckout_VentaAnonimaMandaClienteNulo(t *testing.T) {
	backend := backendConStock()
	ck := nuevoCheckoutDePrueba(t, backend)
	ck.Carrito().Agregar(productoDePrueba(8, "Torta", "35.00"))

	resultado, err := ck.ConfirmarVenta(context.Background(), pagoExacto("35.00"))
	require.NoError(t, err)
	assert.Nil(t, resultado.Solicitud.IDCliente)
	assert.Nil(t, resultado.Solicitud.Cliente)
}

func TestCheckout_FalloDelBackendDejaTodoIntacto(t *testing.T) {
	backend := backendConStock()
	backend.errVenta = errors.New("Stock insuficiente para el producto solicitado")
	ck := nuevoCheckoutDePrueba(t, backend)
	ck.Carrito().Agregar(productoDePrueba(8, "Torta", "35.00"))
	cliente := entity.Cliente{ID: 4, Nombre: "María"}
	ck.SeleccionarCliente(&cliente)

	_, err := ck.ConfirmarVenta(context.Background(), pagoExacto("35.00"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stock insuficiente", "se muestra el mensaje del backend")

	// Carrito y selección quedan para reintentar; no hubo refetch
	assert.False(t, ck.Carrito().Vacio())
	assert.NotNil(t, ck.Cliente())
	assert.Equal(t, []string{"venta"}, backend.llamadas)
}
