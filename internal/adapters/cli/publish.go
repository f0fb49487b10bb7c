package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MegaNoam/CitizensCMD/internal/application"
	"github.com/MegaNoam/CitizensCMD/internal/domain"
	"github.com/MegaNoam/CitizensCMD/internal/infrastructure/database"
)

func (a *app) publishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Load the language file and mirror its messages into PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fail(ExitConfigError, errors.New("publish: DATABASE_URL is not set"))
			}

			if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
				return fail(ExitRuntimeError, err)
			}
			ctx := cmd.Context()
			pool, err := database.NewPool(ctx, cfg.DatabaseURL)
			if err != nil {
				return fail(ExitRuntimeError, fmt.Errorf("database: %w", err))
			}
			defer pool.Close()

			svc := application.NewPublishService(newLangService(cfg), database.NewMessageRepository(pool))
			res, err := svc.Publish(ctx, cfg.Language)
			if err != nil {
				if domain.Code(err) != "" {
					return fail(ExitLoadError, err)
				}
				return fail(ExitRuntimeError, err)
			}
			fmt.Fprintf(a.out, "published %d %s messages\n", res.Table.Len(), res.Language)
			return nil
		},
	}
}
