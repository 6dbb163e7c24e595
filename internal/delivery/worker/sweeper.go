package worker

import (
	"context"
	"log/slog"
	"time"

	"market/config"
	"market/internal/delivery"
	"market/internal/usecase"

	"go.uber.org/fx"
)

type sweeper struct {
	interval time.Duration
	logger   *slog.Logger
	alertUC  usecase.AlertUsecase
	done     chan struct{}
}

// SweeperParams holds dependencies for the certificate sweeper
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	AlertUC usecase.AlertUsecase
}

// NewSweeper creates a delivery that checks every producer's certificates on
// cfg.Alerts.SweepInterval. A zero interval returns a sweeper that idles until shutdown.
func NewSweeper(params SweeperParams) delivery.Delivery {
	s := &sweeper{
		logger:  params.Logger,
		alertUC: params.AlertUC,
		done:    make(chan struct{}),
	}
	if params.Cfg.Alerts != nil {
		s.interval = params.Cfg.Alerts.SweepInterval
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(s.done)

			return nil
		},
	})

	return s
}

// Serve blocks until ctx is cancelled or the application stops.
func (s *sweeper) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Certificate sweep disabled")

		select {
		case <-ctx.Done():
		case <-s.done:
		}

		return nil
	}

	s.logger.Info("Starting certificate sweep", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	summary, err := s.alertUC.SweepCertificates(ctx)
	if err != nil {
		s.logger.Error("Certificate sweep finished with errors", slog.Any("error", err))
	}

	if summary != nil {
		s.logger.Info("Certificate sweep completed",
			slog.Int("producers", summary.Producers),
			slog.Int("alerts_created", summary.Created),
			slog.Int("failures", len(summary.Failures)),
		)
	}
}
