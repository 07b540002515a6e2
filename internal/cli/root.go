// Package cli implements the rgwadmin command-line interface.
//
// The CLI is a thin shell over internal/rgw: it loads settings (JSON file,
// RGW_API_* environment, then flags, in rising precedence), feeds the
// daemon pool from an
// orchestrator export file, builds one admin client per invocation and
// prints the result of a single operation.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/rgwadmin/internal/logging"
	"github.com/dmitrijs2005/rgwadmin/internal/rgw"
	"github.com/dmitrijs2005/rgwadmin/internal/rgw/config"
)

// App carries the collaborators shared by all subcommands, resolved once
// in the root command's PersistentPreRunE.
type App struct {
	settings *config.Settings
	pool     rgw.DaemonPool
	logger   logging.Logger
}

func (a *App) newClient(cmd *cobra.Command) (*rgw.Client, error) {
	return rgw.New(cmd.Context(), a.settings, a.pool, rgw.WithLogger(a.logger))
}

// NewRootCommand builds the rgwadmin command tree.
func NewRootCommand() *cobra.Command {
	app := &App{}

	var (
		configPath  string
		daemonsPath string
		accessKey   string
		secretKey   string
		host        string
		port        string
		sslVerify   bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:           "rgwadmin",
		Short:         "Resolve RGW connection parameters and call the admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "path to a JSON settings file")
	pf.StringVar(&daemonsPath, "daemons", "", "path to an orchestrator daemon export (JSON)")
	pf.StringVar(&accessKey, "access-key", "", "RGW admin access key")
	pf.StringVar(&secretKey, "secret-key", "", "RGW admin secret key")
	pf.StringVar(&host, "host", "", "select the daemon bound to this host")
	pf.StringVar(&port, "port", "", "select the daemon listening on this port")
	pf.BoolVar(&sslVerify, "ssl-verify", true, "verify the gateway TLS certificate")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log admin API requests")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		settings, err := config.Load(configPath)
		if err != nil {
			return err
		}
		// Flags overlay JSON and environment.
		if pf.Changed("access-key") {
			settings.AccessKey = accessKey
		}
		if pf.Changed("secret-key") {
			settings.SecretKey = secretKey
		}
		if pf.Changed("host") {
			settings.Host = host
		}
		if pf.Changed("port") {
			settings.Port = port
		}
		if pf.Changed("ssl-verify") {
			settings.SSLVerify = sslVerify
		}

		if settings.AccessKey != "" && settings.SecretKey == "" {
			secret, err := promptSecretKey(c.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("read secret key: %w", err)
			}
			settings.SecretKey = secret
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})

		app.settings = settings
		app.pool = &filePool{path: daemonsPath}
		app.logger = logging.NewSlogLogger(slog.New(handler))
		return nil
	}

	cmd.AddCommand(
		newStatusCommand(app),
		newRealmsCommand(app),
		newPlacementTargetsCommand(app),
		newBucketsCommand(app),
		newBucketLockCommand(app),
	)
	return cmd
}
