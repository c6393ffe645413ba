package entity

// Usuario representa un usuario del sistema (vendedor, administrador, etc.).
type Usuario struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Activo   bool   `json:"activo"`
	Rol      *Rol   `json:"rol,omitempty"`
}

// Rol agrupa permisos. El backend lo anida en la respuesta de login.
type Rol struct {
	ID       int64     `json:"id"`
	Nombre   string    `json:"nombre"`
	Permisos []Permiso `json:"permiso,omitempty"`
}

// Permiso es una capacidad nombrada; la visibilidad de cada pantalla se
// decide con TienePermiso, nunca consultando el rol directamente.
type Permiso struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
