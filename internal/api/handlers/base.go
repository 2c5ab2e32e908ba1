// Package handlers implements the HTTP endpoint handlers for dyngate.
//
// Endpoints:
//   - GET/PUT <update_path> - No-IP compatible DDNS update (HTTP Basic auth)
//   - GET /healthz - liveness check
//
// The update endpoint speaks the No-IP plaintext vocabulary: badauth,
// nohost, nochg <ip>, good <ip>, 911. Responses never carry anything else.
//
// @title dyngate DDNS API
// @version 1.0
// @description No-IP compatible Dynamic DNS update endpoint.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @securityDefinitions.basic BasicAuth
package handlers

import (
	"log/slog"

	"github.com/mvisser/dyngate/internal/config"
	"github.com/mvisser/dyngate/internal/ddns"
)

// Handler contains dependencies for the endpoint handlers.
type Handler struct {
	cfg        *config.Config
	auth       *ddns.Authenticator
	reconciler *ddns.Reconciler
	logger     *slog.Logger
}

// New creates a Handler. A nil logger falls back to slog.Default.
func New(cfg *config.Config, auth *ddns.Authenticator, reconciler *ddns.Reconciler, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:        cfg,
		auth:       auth,
		reconciler: reconciler,
		logger:     logger,
	}
}
