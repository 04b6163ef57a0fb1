package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/oceanview/internal/config"
	"github.com/example/oceanview/internal/infrastructure/hotelapi"
	"github.com/example/oceanview/internal/logging"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

// apiFlag overrides API_BASE_URL for client commands.
var apiFlag string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "oceanview",
		Short:         "Ocean View Resort reservations: staff web front-end and booking CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiFlag, "api", "", "hotel API base URL (default $API_BASE_URL)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newKeysCmd())
	root.AddCommand(newServerCmd())
	root.AddCommand(newRoomsCmd())
	root.AddCommand(newQuoteCmd())
	root.AddCommand(newBookCmd())
	root.AddCommand(newLookupCmd())
	root.AddCommand(newDashboardCmd())
	root.AddCommand(newMemberCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// clientEnv is what client commands share: settings, a logger and the API client.
type clientEnv struct {
	cfg    config.Config
	log    *zap.Logger
	client *hotelapi.Client
}

func newClientEnv() (clientEnv, error) {
	cfg, err := config.ClientOnly()
	if err != nil {
		return clientEnv{}, err
	}
	if apiFlag != "" {
		cfg.APIBaseURL = apiFlag
	}
	// Client commands stay quiet unless LOG_LEVEL asks otherwise.
	level := cfg.LogLevel
	if level == "" || level == "info" {
		level = "warn"
	}
	log, err := logging.New(level, cfg.IsProduction())
	if err != nil {
		return clientEnv{}, err
	}
	return clientEnv{
		cfg:    cfg,
		log:    log,
		client: hotelapi.New(cfg.APIBaseURL, hotelapi.WithLogger(log)),
	}, nil
}
