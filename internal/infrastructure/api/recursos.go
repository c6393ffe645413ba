package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

// crud agrupa las operaciones comunes de los recursos del backend: listar,
// listar activos, obtener por id, crear, actualizar (PATCH) y el par
// desactivar/activar que usa el soft-delete del servidor.
type crud[T any] struct {
	c    *Client
	ruta string // ej. "/cliente"
}

// Listar devuelve todos los registros, activos e inactivos.
func (r crud[T]) Listar(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.c.hacer(ctx, http.MethodGet, r.ruta, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Activos devuelve solo los registros activos.
func (r crud[T]) Activos(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.c.hacer(ctx, http.MethodGet, r.ruta+"/active", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// PorID devuelve un registro por su id.
func (r crud[T]) PorID(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.c.hacer(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.ruta, id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Crear registra un recurso nuevo y devuelve la versión del servidor (con id).
func (r crud[T]) Crear(ctx context.Context, in T) (*T, error) {
	var item T
	if err := r.c.hacer(ctx, http.MethodPost, r.ruta, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Actualizar modifica un recurso existente y devuelve la versión del servidor.
func (r crud[T]) Actualizar(ctx context.Context, id int64, in T) (*T, error) {
	var item T
	if err := r.c.hacer(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", r.ruta, id), in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Desactivar marca el recurso como inactivo (soft delete).
func (r crud[T]) Desactivar(ctx context.Context, id int64) error {
	return r.c.hacer(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/desactivar", r.ruta, id), nil, nil)
}

// Activar revierte la desactivación.
func (r crud[T]) Activar(ctx context.Context, id int64) error {
	return r.c.hacer(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/activar", r.ruta, id), nil, nil)
}

// ── Recursos CRUD puros ───────────────────────────────────────────────────────

// Clientes opera sobre /cliente.
type Clientes struct{ crud[entity.Cliente] }

// Proveedores opera sobre /proveedor.
type Proveedores struct{ crud[entity.Proveedor] }

// Categorias opera sobre /categoria.
type Categorias struct{ crud[entity.Categoria] }

// Sucursales opera sobre /sucursal.
type Sucursales struct{ crud[entity.Sucursal] }

// Almacenes opera sobre /almacen.
type Almacenes struct{ crud[entity.Almacen] }

// Cajas opera sobre /caja.
type Cajas struct{ crud[entity.Caja] }

// Usuarios opera sobre /usuario.
type Usuarios struct{ crud[entity.Usuario] }

// NotasEntrada opera sobre /nota-entrada.
type NotasEntrada struct{ crud[entity.NotaEntrada] }

// NewClientes construye el recurso de clientes.
func NewClientes(c *Client) *Clientes { return &Clientes{crud[entity.Cliente]{c, "/cliente"}} }

// NewProveedores construye el recurso de proveedores.
func NewProveedores(c *Client) *Proveedores {
	return &Proveedores{crud[entity.Proveedor]{c, "/proveedor"}}
}

// NewCategorias construye el recurso de categorías.
func NewCategorias(c *Client) *Categorias {
	return &Categorias{crud[entity.Categoria]{c, "/categoria"}}
}

// NewSucursales construye el recurso de sucursales.
func NewSucursales(c *Client) *Sucursales {
	return &Sucursales{crud[entity.Sucursal]{c, "/sucursal"}}
}

// NewAlmacenes construye el recurso de almacenes.
func NewAlmacenes(c *Client) *Almacenes { return &Almacenes{crud[entity.Almacen]{c, "/almacen"}} }

// NewCajas construye el recurso de cajas.
func NewCajas(c *Client) *Cajas { return &Cajas{crud[entity.Caja]{c, "/caja"}} }

// NewUsuarios construye el recurso de usuarios.
func NewUsuarios(c *Client) *Usuarios { return &Usuarios{crud[entity.Usuario]{c, "/usuario"}} }

// NewNotasEntrada construye el recurso de notas de entrada.
func NewNotasEntrada(c *Client) *NotasEntrada {
	return &NotasEntrada{crud[entity.NotaEntrada]{c, "/nota-entrada"}}
}
