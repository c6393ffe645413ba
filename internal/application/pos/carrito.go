// Package pos implementa el flujo del punto de venta: carrito, división del
// pago en métodos, armado y envío de la venta, y cierre de caja. Los objetos
// de este paquete modelan el estado de un único terminal y no están pensados
// para compartirse entre goroutines.
package pos

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

// LineaCarrito es un producto en el carrito con su snapshot de precio.
// Única por producto; la cantidad nunca baja de 1 (quitar es explícito).
type LineaCarrito struct {
	IDProducto  int64
	Nombre      string
	PrecioVenta decimal.Decimal
	Cantidad    int
	Foto        string
}

// Carrito es la lista ordenada de líneas de la venta en curso. Vive solo
// durante la sesión de la pantalla POS y se descarta al concretar la venta.
type Carrito struct {
	lineas []LineaCarrito
}

// NuevoCarrito crea un carrito vacío.
func NuevoCarrito() *Carrito { return &Carrito{} }

// Agregar suma el producto al carrito: si ya está, incrementa su cantidad;
// si no, lo agrega al final con cantidad 1.
func (c *Carrito) Agregar(p entity.Producto) {
	for i := range c.lineas {
		if c.lineas[i].IDProducto == p.ID {
			c.lineas[i].Cantidad++
			return
		}
	}
	c.lineas = append(c.lineas, LineaCarrito{
		IDProducto:  p.ID,
		Nombre:      p.Nombre,
		PrecioVenta: p.PrecioVenta,
		Cantidad:    1,
		Foto:        p.Foto,
	})
}

// SetCantidad fija la cantidad de un producto. Valores menores a 1 se
// ignoran: bajar de 1 no está permitido, quitar la línea es otra operación.
func (c *Carrito) SetCantidad(idProducto int64, cantidad int) {
	if cantidad < 1 {
		return
	}
	for i := range c.lineas {
		if c.lineas[i].IDProducto == idProducto {
			c.lineas[i].Cantidad = cantidad
			return
		}
	}
}

// Quitar elimina la línea del producto, esté en la cantidad que esté.
func (c *Carrito) Quitar(idProducto int64) {
	for i := range c.lineas {
		if c.lineas[i].IDProducto == idProducto {
			c.lineas = append(c.lineas[:i], c.lineas[i+1:]...)
			return
		}
	}
}

// Lineas devuelve una copia de las líneas en orden de inserción.
func (c *Carrito) Lineas() []LineaCarrito {
	return append([]LineaCarrito(nil), c.lineas...)
}

// Vacio indica si no hay líneas.
func (c *Carrito) Vacio() bool { return len(c.lineas) == 0 }

// Total suma precioVenta × cantidad de cada línea.
func (c *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lineas {
		total = total.Add(l.PrecioVenta.Mul(decimal.NewFromInt(int64(l.Cantidad))))
	}
	return total
}

// Limpiar vacía el carrito (tras una venta exitosa).
func (c *Carrito) Limpiar() { c.lineas = nil }
