package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/oceanview/internal/application/usecases"
	"github.com/example/oceanview/internal/auth"
	"github.com/example/oceanview/internal/config"
	"github.com/example/oceanview/internal/domain/wizard"
	"github.com/example/oceanview/internal/infrastructure/hotelapi"
	"github.com/example/oceanview/internal/logging"
	"github.com/example/oceanview/internal/web"
	"github.com/example/oceanview/internal/wizards"
)

func newServerCmd() *cobra.Command {
	var sweepEvery time.Duration

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the staff web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sweepEvery <= 0 {
				return fmt.Errorf("--sweep-interval must be positive, got %s", sweepEvery)
			}
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if apiFlag != "" {
				cfg.APIBaseURL = apiFlag
			}
			log, err := logging.New(cfg.LogLevel, cfg.IsProduction())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			api := hotelapi.New(cfg.APIBaseURL, hotelapi.WithLogger(log.Named("hotelapi")))
			log.Info("using hotel api", zap.String("base_url", api.BaseURL()))

			wizardLog := log.Named("wizard")
			store := wizards.NewStore(func() *wizard.Wizard {
				return wizard.New(api, wizard.WithLogger(wizardLog))
			}, cfg.SessionTTL, log.Named("wizards"))
			go func() { _ = store.Run(ctx, sweepEvery) }()

			ws := &web.Server{
				Auth:      auth.NewStore(cfg.CookieHashKey, cfg.CookieBlockKey, cfg.SessionTTL),
				Accounts:  usecases.AuthService{Auth: api},
				Members:   usecases.MemberService{Directory: api},
				Dashboard: usecases.DashboardService{Reservations: api},
				Wizards:   store,
				Log:       log.Named("web"),
			}
			return web.Start(ctx, cfg.ListenAddr, ws.Routes(), log)
		},
	}

	cmd.Flags().DurationVar(&sweepEvery, "sweep-interval", time.Minute, "how often idle booking sessions are evicted")
	return cmd
}
