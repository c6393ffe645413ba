package entity

// Sucursal representa una sucursal de la panadería.
type Sucursal struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Codigo      string `json:"codigo,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
	RazonSocial string `json:"razon_social,omitempty"`
	NIT         string `json:"nit,omitempty"`
	Activo      bool   `json:"activo"`
}

// Almacen representa un almacén físico dentro de una sucursal.
type Almacen struct {
	ID          int64     `json:"id"`
	Numero      int       `json:"numero"`
	Descripcion string    `json:"descripcion,omitempty"`
	Sucursal    *Sucursal `json:"sucursal,omitempty"`
	Activo      bool      `json:"activo"`
}
