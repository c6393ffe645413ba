// Terminal de punto de venta: pantalla de caja contra el backend
// mi_panaderito. El terminal solo orquesta estado y presentación; la lógica
// de negocio de registro (stock, validación de pagos, autenticación) vive en
// el backend.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/panaderito-pos/internal/application/pos"
	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
	"github.com/tu-usuario/panaderito-pos/internal/infrastructure/api"
	"github.com/tu-usuario/panaderito-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/panaderito-pos/internal/session"
	"github.com/tu-usuario/panaderito-pos/internal/store"
	"github.com/tu-usuario/panaderito-pos/pkg/config"
	"github.com/tu-usuario/panaderito-pos/pkg/logger"
)

func main() {
	idSucursal := flag.Int64("sucursal", 0, "id de la sucursal del terminal")
	idSesion := flag.Int64("sesion", 0, "id de la sesión de caja abierta")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	log.Info().Str("env", cfg.App.Env).Str("app", cfg.App.Name).Msg("iniciando terminal")

	if *idSucursal == 0 || *idSesion == 0 {
		fmt.Println("Uso: pos -sucursal <id> -sesion <id de sesión de caja>")
		os.Exit(2)
	}

	archivo := session.NuevoArchivo(cfg.Sesion.Ruta)
	ses := session.Nueva()
	if datos, err := archivo.Cargar(); err != nil {
		log.Warn().Err(err).Msg("no se pudo restaurar la sesión")
	} else if datos != nil {
		ses.Restaurar(*datos)
	}

	// Ante un 401 la sesión ya fue limpiada por el cliente; acá solo se
	// borra la copia persistida y se avisa, el loop vuelve a pedir login.
	noAutorizado := func() {
		_ = archivo.Borrar()
		fmt.Println("La sesión expiró. Inicie sesión nuevamente.")
	}

	cliente := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.TimeoutDuration(),
	}, ses, noAutorizado, log)

	t := &terminal{
		ses:         ses,
		archivo:     archivo,
		auth:        api.NewAuth(cliente),
		cierre:      pos.NewCierreCaja(api.NewCajaSesiones(cliente)),
		recibos:     pdf.NewGeneradorRecibo(cfg.App.Name),
		entrada:     bufio.NewScanner(os.Stdin),
		imprimir:    message.NewPrinter(language.Spanish),
		rutaRecibos: filepath.Dir(cfg.Sesion.Ruta),
		idSesion:    *idSesion,
		log:         log,
	}

	productos := store.NuevoRecurso(func(p entity.ProductoConsolidado) int64 { return p.Producto.ID })
	clientes := store.NuevoRecurso(func(c entity.Cliente) int64 { return c.ID })
	t.checkout = pos.NewCheckout(
		api.NewVentas(cliente),
		api.NewProductos(cliente),
		api.NewClientes(cliente),
		productos, clientes,
		*idSucursal, *idSesion,
		log,
	)
	t.productos = productos
	t.clientes = clientes

	t.correr(context.Background())
}

// terminal es el loop interactivo del POS. Toda mutación de estado ocurre en
// esta goroutine, en respuesta a la entrada del operador.
type terminal struct {
	ses         *session.Sesion
	archivo     *session.Archivo
	auth        *api.Auth
	checkout    *pos.Checkout
	cierre      *pos.CierreCaja
	recibos     *pdf.GeneradorRecibo
	productos   *store.Recurso[entity.ProductoConsolidado]
	clientes    *store.Recurso[entity.Cliente]
	entrada     *bufio.Scanner
	imprimir    *message.Printer
	rutaRecibos string
	idSesion    int64
	log         *logger.Logger
}

func (t *terminal) correr(ctx context.Context) {
	for !t.ses.Autenticada() {
		if !t.login(ctx) {
			return
		}
	}
	if t.ses.Expirada(time.Now()) {
		fmt.Println("El token guardado venció; vuelva a iniciar sesión.")
		t.ses.Limpiar()
		_ = t.archivo.Borrar()
		if !t.login(ctx) {
			return
		}
	}

	if err := t.checkout.Cargar(ctx); err != nil {
		fmt.Println("Error:", err)
	}

	fmt.Println("Punto de Venta — escriba 'ayuda' para ver los comandos.")
	for {
		fmt.Print("> ")
		if !t.entrada.Scan() {
			return
		}
		linea := strings.Fields(strings.TrimSpace(t.entrada.Text()))
		if len(linea) == 0 {
			continue
		}
		switch linea[0] {
		case "ayuda":
			t.ayuda()
		case "productos":
			t.listarProductos()
		case "agregar":
			t.agregar(linea[1:])
		case "quitar":
			t.quitar(linea[1:])
		case "cantidad":
			t.cantidad(linea[1:])
		case "carrito":
			t.verCarrito()
		case "cliente":
			t.seleccionarCliente(linea[1:])
		case "pagar":
			t.pagar(ctx)
		case "cierre":
			t.cerrarCaja(ctx)
		case "logout":
			t.ses.Limpiar()
			_ = t.archivo.Borrar()
			fmt.Println("Sesión cerrada.")
		case "salir":
			return
		default:
			fmt.Println("Comando desconocido; escriba 'ayuda'.")
		}
		if !t.ses.Autenticada() {
			// Un 401 en cualquier llamada limpió la sesión: volver al login.
			if !t.login(ctx) {
				return
			}
		}
	}
}

func (t *terminal) ayuda() {
	fmt.Println(`Comandos:
  productos             lista el catálogo con stock
  agregar <id>          agrega un producto al carrito
  quitar <id>           quita un producto del carrito
  cantidad <id> <n>     fija la cantidad de un producto
  carrito               muestra el carrito y el total
  cliente <id|anonimo>  selecciona el cliente de la venta
  pagar                 abre la división de pagos y confirma la venta
  cierre                cierra la sesión de caja
  logout                cierra la sesión del usuario
  salir`)
}

func (t *terminal) login(ctx context.Context) bool {
	fmt.Print("Usuario: ")
	if !t.entrada.Scan() {
		return false
	}
	usuario := strings.TrimSpace(t.entrada.Text())
	fmt.Print("Contraseña: ")
	if !t.entrada.Scan() {
		return false
	}
	clave := t.entrada.Text()

	datos, err := t.auth.Login(ctx, usuario, clave)
	if err != nil {
		fmt.Println("Error:", err)
		return true // reintentar
	}
	t.ses.Establecer(*datos)
	if err := t.archivo.Guardar(*datos); err != nil {
		t.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}
	fmt.Println("Inicio de sesión exitoso.")
	return true
}

func (t *terminal) listarProductos() {
	for _, pc := range t.productos.Items() {
		t.imprimir.Printf("%6d  %-30s Bs. %s  stock %d\n",
			pc.Producto.ID, pc.Producto.Nombre, pc.Producto.PrecioVenta.StringFixed(2), pc.TotalStock)
	}
}

func (t *terminal) agregar(args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Uso: agregar <id>")
		return
	}
	pc, ok := t.productos.PorID(id)
	if !ok {
		fmt.Println("Producto no encontrado en el catálogo.")
		return
	}
	t.checkout.Carrito().Agregar(pc.Producto)
	t.verCarrito()
}

func (t *terminal) quitar(args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Uso: quitar <id>")
		return
	}
	t.checkout.Carrito().Quitar(id)
	t.verCarrito()
}

func (t *terminal) cantidad(args []string) {
	if len(args) != 2 {
		fmt.Println("Uso: cantidad <id> <n>")
		return
	}
	id, err1 := strconv.ParseInt(args[0], 10, 64)
	n, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("Uso: cantidad <id> <n>")
		return
	}
	t.checkout.Carrito().SetCantidad(id, n)
	t.verCarrito()
}

func (t *terminal) verCarrito() {
	carrito := t.checkout.Carrito()
	if carrito.Vacio() {
		fmt.Println("Tu carrito está vacío. Añade productos para comenzar.")
		return
	}
	for _, l := range carrito.Lineas() {
		t.imprimir.Printf("%6d  %-30s x%d  Bs. %s\n", l.IDProducto, l.Nombre, l.Cantidad, l.PrecioVenta.StringFixed(2))
	}
	t.imprimir.Printf("Total: Bs. %s\n", carrito.Total().StringFixed(2))
}

func (t *terminal) seleccionarCliente(args []string) {
	if len(args) == 1 && args[0] == "anonimo" {
		t.checkout.SeleccionarCliente(nil)
		fmt.Println("Venta anónima.")
		return
	}
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Uso: cliente <id|anonimo>")
		return
	}
	c, ok := t.clientes.PorID(id)
	if !ok {
		fmt.Println("Cliente no encontrado; pruebe refrescar con 'productos'.")
		return
	}
	t.checkout.SeleccionarCliente(&c)
	fmt.Printf("Cliente: %s %s\n", c.Nombre, c.Apellido)
}

// pagar recorre la división de pagos por consola: una línea EFECTIVO inicial,
// líneas adicionales a pedido, y confirma contra el total del carrito. Un
// rechazo reabre las líneas culpables para reingresarlas; 'cancelar' vuelve
// al menú sin tocar el carrito.
func (t *terminal) pagar(ctx context.Context) {
	if err := t.checkout.Pagar(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	total := t.checkout.Carrito().Total()
	t.imprimir.Printf("Total a pagar: Bs. %s\n", total.StringFixed(2))

	division := pos.NuevaDivisionPago()
	for {
		for i, l := range division.Lineas() {
			if l.Monto != "" {
				continue
			}
			fmt.Printf("Monto %s: ", l.TipoPago)
			if !t.entrada.Scan() {
				return
			}
			division.SetMonto(i, strings.TrimSpace(t.entrada.Text()))
			division.NormalizarMonto(i)
			if l.TipoPago != entity.TipoPagoEfectivo {
				fmt.Print("Detalles: ")
				if !t.entrada.Scan() {
					return
				}
				division.SetDetalles(i, strings.TrimSpace(t.entrada.Text()))
			}
		}
		t.imprimir.Printf("Cambio: Bs. %s\n", division.Cambio(total))
		fmt.Print("¿Agregar otro método de pago? (tarjeta/otros/editar/cancelar/no): ")
		if !t.entrada.Scan() {
			return
		}
		switch strings.ToLower(strings.TrimSpace(t.entrada.Text())) {
		case "tarjeta":
			division.AgregarLinea()
			continue
		case "otros":
			division.AgregarLinea()
			division.SetTipo(len(division.Lineas())-1, entity.TipoPagoOtros)
			continue
		case "editar":
			for i := range division.Lineas() {
				division.SetMonto(i, "")
			}
			continue
		case "cancelar":
			fmt.Println("Pago cancelado; el carrito queda intacto.")
			return
		}

		metodos, err := division.Confirmar(total)
		if err != nil {
			fmt.Println("Error:", err)
			if division.ReabrirInvalidas() == 0 {
				fmt.Println("Puede agregar otro método, 'editar' los montos o 'cancelar'.")
			}
			continue
		}

		resultado, err := t.checkout.ConfirmarVenta(ctx, metodos)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Println("Venta realizada con éxito.")
		t.guardarRecibo(resultado)
		return
	}
}

func (t *terminal) guardarRecibo(resultado *pos.ResultadoVenta) {
	raw, err := t.recibos.Generar(resultado.Solicitud, resultado.Cliente, time.Now())
	if err != nil {
		t.log.Warn().Err(err).Msg("no se pudo generar el recibo")
		return
	}
	nombre := fmt.Sprintf("recibo-%d.pdf", time.Now().Unix())
	ruta := filepath.Join(t.rutaRecibos, nombre)
	if err := os.WriteFile(ruta, raw, 0o644); err != nil {
		t.log.Warn().Err(err).Msg("no se pudo guardar el recibo")
		return
	}
	fmt.Println("Recibo guardado en", ruta)
}

func (t *terminal) cerrarCaja(ctx context.Context) {
	balance, err := t.cierre.Cerrar(ctx, t.idSesion)
	if err != nil {
		fmt.Println("Error al cerrar la caja:", err)
		return
	}
	fmt.Println("Balance de Caja")
	fmt.Println("Fecha/Hora Apertura:", balance.FechaHoraApertura.Format("02/01/2006 15:04"))
	t.imprimir.Printf("Saldo Inicial: Bs. %s\n", balance.SaldoInicial.StringFixed(2))
	t.imprimir.Printf("Total Ventas:  Bs. %s\n", balance.TotalVentas.StringFixed(2))
	t.imprimir.Printf("Saldo Final:   Bs. %s\n", balance.SaldoFinal.StringFixed(2))
}

func parseID(args []string) (int64, bool) {
	if len(args) != 1 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
