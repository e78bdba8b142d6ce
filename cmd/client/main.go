package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-event-keeper/internal/adapter"
	"github.com/MKhiriev/go-event-keeper/internal/client"
	"github.com/MKhiriev/go-event-keeper/internal/config"
	"github.com/MKhiriev/go-event-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("event-client")
	log.Debug().
		Str("version", orNotAvailable(buildVersion)).
		Str("date", orNotAvailable(buildDate)).
		Str("commit", orNotAvailable(buildCommit)).
		Msg("client build info")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = client.NewApp(serverAdapter, os.Stdout, log).Run(ctx, cfg.Args)
	switch {
	case err == nil:
	case errors.Is(err, client.ErrNoCommand), errors.Is(err, client.ErrUnknownCommand), errors.Is(err, client.ErrUsage):
		fmt.Fprintf(os.Stderr, "%v\n\n%s\n", err, client.Usage)
		stop()
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
