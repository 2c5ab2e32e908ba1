package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvisser/dyngate/internal/api"
	"github.com/mvisser/dyngate/internal/config"
	"github.com/mvisser/dyngate/internal/ddns"
	"github.com/mvisser/dyngate/internal/dnsstore"
	"github.com/mvisser/dyngate/internal/logging"
	"github.com/mvisser/dyngate/internal/secrets"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (or set DYNGATE_CONFIG)")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port")
		updatePath = flag.String("update-path", "", "Override the update route path")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *updatePath != "" {
		cfg.Server.UpdatePath = *updatePath
	}
	if *jsonLogs {
		cfg.Logging.Format = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	if cfg.DNS.APIToken == "" {
		fmt.Fprintln(os.Stderr, "no DNS API token: set dns.api_token or CLOUDFLARE_API_TOKEN")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	credentialStore, err := buildCredentialStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up credential store: %v\n", err)
		os.Exit(1)
	}

	recordStore, err := dnsstore.NewCloudflare(cfg.DNS.APIToken, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up DNS store: %v\n", err)
		os.Exit(1)
	}

	auth := ddns.NewAuthenticator(credentialStore)
	reconciler := ddns.NewReconciler(recordStore, cfg.DNS.RecordTTL, logger)
	server := api.New(cfg, auth, reconciler, logger)

	logger.Info("dyngate starting",
		"addr", server.Addr(),
		"update_path", cfg.Server.UpdatePath,
		"secrets_provider", cfg.Secrets.Provider,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
			os.Exit(1)
		}
	}
}

func buildCredentialStore(ctx context.Context, cfg *config.Config) (secrets.Store, error) {
	switch cfg.Secrets.Provider {
	case config.SecretsStatic:
		return secrets.Static{
			Username: cfg.Secrets.Username,
			Password: cfg.Secrets.Password,
		}, nil
	default:
		return secrets.NewManager(ctx, cfg.Secrets.SecretName, cfg.Secrets.Region)
	}
}
