package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Archivo persiste la sesión en un único archivo JSON. Equivale al
// localStorage del frontend original: una clave, borrado total en logout/401.
type Archivo struct {
	ruta string
}

// NuevoArchivo crea el almacén de sesión sobre la ruta dada.
func NuevoArchivo(ruta string) *Archivo {
	return &Archivo{ruta: ruta}
}

// Cargar lee la sesión persistida. Devuelve (nil, nil) si no existe.
func (a *Archivo) Cargar() (*Datos, error) {
	raw, err := os.ReadFile(a.ruta)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var d Datos
	if err := json.Unmarshal(raw, &d); err != nil {
		// Archivo corrupto: se descarta, el operador vuelve a iniciar sesión.
		_ = os.Remove(a.ruta)
		return nil, nil
	}
	return &d, nil
}

// Guardar escribe la sesión de forma atómica (archivo temporal + rename).
func (a *Archivo) Guardar(d Datos) error {
	if err := os.MkdirAll(filepath.Dir(a.ruta), 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	tmp := a.ruta + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("escribir sesión: %w", err)
	}
	if err := os.Rename(tmp, a.ruta); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Borrar elimina la sesión persistida; no es error que no exista.
func (a *Archivo) Borrar() error {
	err := os.Remove(a.ruta)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
