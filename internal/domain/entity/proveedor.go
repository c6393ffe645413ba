package entity

// Proveedor representa un proveedor de insumos de la panadería.
type Proveedor struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Activo    bool   `json:"activo"`
}
