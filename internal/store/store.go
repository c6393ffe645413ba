// Package store mantiene las cachés client-side de los recursos del backend.
// Cada recurso guarda {items, cargando, error}: snapshots eventualmente
// consistentes que se invalidan con un refetch completo después de cualquier
// mutación. La única invariante local es la unicidad del id dentro de la
// lista; el orden del servidor se preserva tal cual.
package store

import (
	"context"
	"sync"
)

// Recurso es la caché de una lista de entidades T identificadas por id.
// Es seguro para uso concurrente; el refetch reemplaza la lista completa.
type Recurso[T any] struct {
	mu       sync.RWMutex
	items    []T
	cargando bool
	err      error
	id       func(T) int64
}

// NuevoRecurso crea la caché; id extrae el identificador de cada elemento.
func NuevoRecurso[T any](id func(T) int64) *Recurso[T] {
	return &Recurso[T]{id: id}
}

// Refrescar trae la lista completa con fetch y reemplaza el contenido.
// Marca cargando durante la llamada; si fetch falla, conserva la lista
// anterior y registra el error.
func (r *Recurso[T]) Refrescar(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	r.mu.Lock()
	r.cargando = true
	r.err = nil
	r.mu.Unlock()

	items, err := fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cargando = false
	if err != nil {
		r.err = err
		return err
	}
	r.items = items
	return nil
}

// Items devuelve una copia del snapshot actual (orden preservado).
func (r *Recurso[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]T(nil), r.items...)
}

// PorID busca un elemento por id en el snapshot actual.
func (r *Recurso[T]) PorID(id int64) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if r.id(it) == id {
			return it, true
		}
	}
	var cero T
	return cero, false
}

// Cargando indica si hay un refetch en curso.
func (r *Recurso[T]) Cargando() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cargando
}

// Err devuelve el error de la última operación, si lo hubo.
func (r *Recurso[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Agregar añade el elemento recién creado al final de la lista.
func (r *Recurso[T]) Agregar(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
}

// Reemplazar sustituye in place el elemento con el mismo id; si no está,
// no hace nada (el próximo refetch reconcilia).
func (r *Recurso[T]) Reemplazar(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if r.id(it) == r.id(item) {
			r.items[i] = item
			return
		}
	}
}

// Quitar elimina el elemento con ese id (tras desactivar/activar, el
// registro sale de la lista visible).
func (r *Recurso[T]) Quitar(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if r.id(it) == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}
