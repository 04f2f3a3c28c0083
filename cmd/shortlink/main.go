package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shortlink/internal/conf"
	"shortlink/internal/logging"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name = "shortlink"
	// Version is the version of the compiled software.
	Version string
	// flagconf is the config flag.
	flagconf string

	id, _ = os.Hostname()
)

var rootCmd = &cobra.Command{
	Use:   "shortlink",
	Short: "URL shortener with click analytics",
	Long: `shortlink issues short codes for URLs, redirects visitors to the original
address and records anonymised click analytics for every redirect.

Run without a subcommand to start the HTTP service.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE:  runMigrate,
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove retired codes whose retention window has passed and exit",
	RunE:  runPurge,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: --conf config.yaml")
	rootCmd.AddCommand(serveCmd, migrateCmd, purgeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads the configuration and the process logger shared by the
// one-shot commands.
func bootstrap() (*conf.Bootstrap, *zap.Logger, error) {
	bc, err := conf.Load(flagconf)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(bc.Log)
	if err != nil {
		return nil, nil, err
	}
	return bc, logger.With(zap.String("service.id", id), zap.String("service.name", Name)), nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	bc, err := conf.Load(flagconf)
	if err != nil {
		return err
	}

	app, cleanup, err := wireApp(bc)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer cleanup()

	// start and wait for stop signal
	return app.Run()
}
