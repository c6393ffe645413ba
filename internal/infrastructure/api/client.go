// Package api implementa el cliente HTTP hacia el backend mi_panaderito:
// inyección del bearer token, decodificación del sobre {message, data,
// errors}, mapeo de errores con el mensaje del servidor y manejo global de
// 401 (limpiar sesión + hook de redirección, una sola vez por respuesta).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/panaderito-pos/internal/application/dto"
	"github.com/tu-usuario/panaderito-pos/internal/domain"
	"github.com/tu-usuario/panaderito-pos/internal/session"
	"github.com/tu-usuario/panaderito-pos/pkg/logger"
)

// Config del cliente base.
type Config struct {
	BaseURL string        // con prefijo de la API, ej. https://host/mi_panaderito
	Timeout time.Duration // 0 usa 15s
}

// Client es el cliente base compartido por todos los recursos. Adjunta el
// token de la sesión a cada request y ante un 401 limpia la sesión y dispara
// el hook de no-autorizado exactamente una vez por respuesta.
type Client struct {
	http         *http.Client
	baseURL      string
	sesion       *session.Sesion
	noAutorizado func()
	log          *logger.Logger
}

// New construye el cliente base. El hook noAutorizado es opcional (el
// terminal lo usa para volver a la pantalla de login).
func New(cfg Config, ses *session.Sesion, noAutorizado func(), log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		http:         &http.Client{Timeout: timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		sesion:       ses,
		noAutorizado: noAutorizado,
		log:          log,
	}
}

// hacer ejecuta una llamada enveloped: el cuerpo de respuesta trae el sobre
// {message, data, errors} y data se decodifica en out (out puede ser nil).
func (c *Client) hacer(ctx context.Context, metodo, ruta string, cuerpo, out any) error {
	resp, raw, err := c.ejecutar(ctx, metodo, ruta, cuerpo)
	if err != nil {
		return err
	}

	var sobre dto.Respuesta
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &sobre); err != nil {
			if resp.StatusCode >= 400 {
				return fmt.Errorf("%w (%d)", domain.ErrRespuestaInvalida, resp.StatusCode)
			}
			return fmt.Errorf("%w: %v", domain.ErrRespuestaInvalida, err)
		}
	}

	if resp.StatusCode >= 400 {
		return c.errorBackend(resp.StatusCode, &sobre)
	}

	if out != nil {
		if len(sobre.Data) == 0 {
			return fmt.Errorf("%w: respuesta sin data", domain.ErrRespuestaInvalida)
		}
		if err := json.Unmarshal(sobre.Data, out); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrRespuestaInvalida, err)
		}
	}
	return nil
}

// hacerPlano ejecuta una llamada cuyo cuerpo de respuesta NO viene en sobre
// (hoy solo login) y decodifica el cuerpo completo en out.
func (c *Client) hacerPlano(ctx context.Context, metodo, ruta string, cuerpo, out any) error {
	resp, raw, err := c.ejecutar(ctx, metodo, ruta, cuerpo)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var sobre dto.Respuesta
		_ = json.Unmarshal(raw, &sobre)
		return c.errorBackend(resp.StatusCode, &sobre)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrRespuestaInvalida, err)
		}
	}
	return nil
}

// ejecutar arma y dispara la request, lee el cuerpo completo y aplica el
// interceptor de 401. Devuelve la respuesta ya cerrada junto a su cuerpo.
func (c *Client) ejecutar(ctx context.Context, metodo, ruta string, cuerpo any) (*http.Response, []byte, error) {
	var body io.Reader
	if cuerpo != nil {
		raw, err := json.Marshal(cuerpo)
		if err != nil {
			return nil, nil, fmt.Errorf("serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, c.baseURL+ruta, body)
	if err != nil {
		return nil, nil, fmt.Errorf("armar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if cuerpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.sesion.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("metodo", metodo).Str("ruta", ruta).Msg("error de red")
		return nil, nil, fmt.Errorf("error al comunicarse con el servidor: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Sesión inválida: limpiar y avisar al terminal, una vez por respuesta.
		c.sesion.Limpiar()
		if c.noAutorizado != nil {
			c.noAutorizado()
		}
		return nil, nil, fmt.Errorf("%w: la sesión expiró, inicie sesión nuevamente", domain.ErrNoAutorizado)
	}

	c.log.Debug().Str("metodo", metodo).Str("ruta", ruta).Int("status", resp.StatusCode).Msg("request")
	return resp, raw, nil
}

// errorBackend traduce un status de error al mensaje del backend, o a un
// fallback genérico si no dijo nada.
func (c *Client) errorBackend(status int, sobre *dto.Respuesta) error {
	if status == http.StatusNotFound {
		if msg := sobre.MensajeError(); msg != "" {
			return fmt.Errorf("%w: %s", domain.ErrNoEncontrado, msg)
		}
		return domain.ErrNoEncontrado
	}
	if msg := sobre.MensajeError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return fmt.Errorf("error al comunicarse con el servidor (%d)", status)
}
