package dto

import "github.com/tu-usuario/panaderito-pos/internal/domain/entity"

// LoginRequest credenciales de POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse respuesta de login. A diferencia del resto de la API, login
// responde el cuerpo plano, sin el sobre {message, data, errors}.
type LoginResponse struct {
	Token    string     `json:"token"`
	Email    string     `json:"email"`
	Nombre   string     `json:"nombre"`
	Apellido string     `json:"apellido"`
	Role     entity.Rol `json:"role"`
}
