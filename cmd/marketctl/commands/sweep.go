package commands

import (
	"context"
	"encoding/json"

	"market/config"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/spf13/cobra"
)

func newSweepCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Check producer certificates and raise expiry alerts",
		Long: `Check certificates of every producer, or of one user, and create an alert for each
certificate that expires within 30 days or has already expired.

Examples:
  marketctl sweep                  # All producers
  marketctl sweep --user <id>      # A single user`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			var (
				alertUC   usecase.AlertUsecase
				profileUC usecase.ProfileUsecase
				summary   *usecase.CheckSummary
			)

			runErr := runWithStore(cmd.Context(), cfg, func(ctx context.Context) error {
				if userID == "" {
					summary, err = alertUC.SweepCertificates(ctx)

					return err
				}

				summary, err = checkUser(ctx, alertUC, profileUC, userID)

				return err
			}, &alertUC, &profileUC)

			if summary != nil {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(summary); err != nil {
					return errors.WithStack(err)
				}
			}

			return runErr
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Check only this user")

	return cmd
}

func checkUser(
	ctx context.Context,
	alertUC usecase.AlertUsecase,
	profileUC usecase.ProfileUsecase,
	userID string,
) (*usecase.CheckSummary, error) {
	user, err := profileUC.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("user " + userID)
	}

	summary := &usecase.CheckSummary{}
	if user.IsProducer() {
		summary.Producers = 1
	}

	summary.Created, err = alertUC.CheckCertificateExpiration(ctx, user)

	return summary, err
}
