// Package session maneja la sesión autenticada del terminal: token, usuario
// y permisos. Es el único estado compartido entre flujos; lo muta solo
// login/logout (y el interceptor de 401) y lo lee cada request saliente.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tu-usuario/panaderito-pos/internal/domain/entity"
)

// UsuarioSesion identidad del usuario autenticado, tal como la entregó login.
type UsuarioSesion struct {
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Rol      string `json:"rol"`
}

// Datos es el contenido persistible de la sesión (una sola clave, un solo
// documento, como el almacenamiento por origen del navegador).
type Datos struct {
	Token    string           `json:"token"`
	Usuario  UsuarioSesion    `json:"usuario"`
	Permisos []entity.Permiso `json:"permisos"`
}

// Sesion es el contexto de sesión inyectable. Se inicializa desde el archivo
// persistido al arranque, lo muta login/logout y se vacía ante un 401.
type Sesion struct {
	mu    sync.RWMutex
	datos Datos
	viva  bool
}

// Nueva crea una sesión vacía (no autenticada).
func Nueva() *Sesion { return &Sesion{} }

// Restaurar carga datos previamente persistidos.
func (s *Sesion) Restaurar(d Datos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datos = d
	s.viva = d.Token != ""
}

// Establecer fija la sesión tras un login exitoso.
func (s *Sesion) Establecer(d Datos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datos = d
	s.viva = d.Token != ""
}

// Limpiar vacía la sesión por completo (logout o 401).
func (s *Sesion) Limpiar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datos = Datos{}
	s.viva = false
}

// Token devuelve el bearer token vigente, o "" si no hay sesión.
func (s *Sesion) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datos.Token
}

// Autenticada indica si hay una sesión viva.
func (s *Sesion) Autenticada() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viva
}

// Datos devuelve una copia del contenido de la sesión.
func (s *Sesion) Datos() Datos {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.datos
	d.Permisos = append([]entity.Permiso(nil), s.datos.Permisos...)
	return d
}

// TienePermiso responde si el permiso nombrado está en la sesión.
func (s *Sesion) TienePermiso(nombre string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TienePermiso(s.datos.Permisos, nombre)
}

// TienePermiso es la verificación pura de capacidad: busca el permiso por
// nombre exacto dentro del conjunto.
func TienePermiso(permisos []entity.Permiso, nombre string) bool {
	for _, p := range permisos {
		if p.Nombre == nombre {
			return true
		}
	}
	return false
}

// Expiracion lee el claim exp del token sin verificar la firma: el secreto
// vive solo en el backend, así que aquí el token es opaco salvo sus claims.
// Sirve únicamente para avisar al operador; la autoridad es el 401 del server.
func Expiracion(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("token ilegible: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token sin claim exp")
	}
	return claims.ExpiresAt.Time, nil
}

// Expirada indica si el token de la sesión ya venció según su claim exp.
// Un token ilegible o sin exp se trata como no expirado; el backend decide.
func (s *Sesion) Expirada(ahora time.Time) bool {
	exp, err := Expiracion(s.Token())
	if err != nil {
		return false
	}
	return ahora.After(exp)
}
