package entity

// Cliente representa un cliente registrado. NIT puede venir vacío (cliente
// sin documento); un cliente nulo en la venta significa venta anónima.
type Cliente struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email,omitempty"`
	NIT      int64  `json:"nit,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Activo   bool   `json:"activo"`
}
