package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cobra"
	"github.com/wattwiselabs/wattwise/internal/appliance"
	"github.com/wattwiselabs/wattwise/internal/auth"
	"github.com/wattwiselabs/wattwise/internal/bill"
	"github.com/wattwiselabs/wattwise/internal/clock"
	"github.com/wattwiselabs/wattwise/internal/config"
	"github.com/wattwiselabs/wattwise/internal/dashboard"
	"github.com/wattwiselabs/wattwise/internal/forecast"
	"github.com/wattwiselabs/wattwise/internal/migration"
	"github.com/wattwiselabs/wattwise/internal/monthlydata"
	"github.com/wattwiselabs/wattwise/internal/observability"
	"github.com/wattwiselabs/wattwise/internal/predictor"
	"github.com/wattwiselabs/wattwise/internal/recommendation"
	"github.com/wattwiselabs/wattwise/internal/seed"
	"github.com/wattwiselabs/wattwise/internal/server"
	"github.com/wattwiselabs/wattwise/internal/tariff"
	"github.com/wattwiselabs/wattwise/internal/usage"
	"github.com/wattwiselabs/wattwise/internal/user"
	"github.com/wattwiselabs/wattwise/internal/userappliance"
	"github.com/wattwiselabs/wattwise/pkg/db"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "wattwise",
		Short:   "WattWise energy monitoring backend",
		Version: readVersionFromEnv(),
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd(), newServeCmd(), newAllCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load tariff, appliance and monthly reference data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run migrations, then start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMigrate(); err != nil {
				return err
			}
			runServe()
			return nil
		},
	}
}

func runMigrate() error {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

func runSeed() error {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
		fx.Invoke(seed.Run),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

func runServe() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		auth.Module,
		user.Module,
		tariff.Module,
		appliance.Module,
		userappliance.Module,
		usage.Module,
		forecast.Module,
		recommendation.Module,
		bill.Module,
		monthlydata.Module,
		predictor.Module,
		dashboard.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func readVersionFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	return "dev"
}
