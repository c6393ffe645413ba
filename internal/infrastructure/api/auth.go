package api

import (
	"context"
	"net/http"

	"github.com/tu-usuario/panaderito-pos/internal/application/dto"
	"github.com/tu-usuario/panaderito-pos/internal/session"
)

// Auth opera sobre /auth: login contra el backend y materialización de la
// sesión local.
type Auth struct {
	c *Client
}

// NewAuth construye el recurso de autenticación.
func NewAuth(c *Client) *Auth { return &Auth{c: c} }

// Login autentica al usuario. La respuesta de login viene plana (sin sobre);
// de ella se arma la sesión: token, identidad y la lista de permisos del rol.
func (a *Auth) Login(ctx context.Context, username, password string) (*session.Datos, error) {
	var resp dto.LoginResponse
	req := dto.LoginRequest{Username: username, Password: password}
	if err := a.c.hacerPlano(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	datos := &session.Datos{
		Token: resp.Token,
		Usuario: session.UsuarioSesion{
			Email:    resp.Email,
			Nombre:   resp.Nombre,
			Apellido: resp.Apellido,
			Rol:      resp.Role.Nombre,
		},
		Permisos: resp.Role.Permisos,
	}
	return datos, nil
}
