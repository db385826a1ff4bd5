package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Goden-Gun/facecodes/pkg/bootstrap"
	"github.com/Goden-Gun/facecodes/pkg/codes"
	"github.com/Goden-Gun/facecodes/pkg/config"
	log "github.com/Goden-Gun/facecodes/pkg/logger"
	"github.com/Goden-Gun/facecodes/pkg/status"
)

// Version is the application version.
const Version = "0.1.0"

// Config is the on-disk configuration of the facecodes tool.
type Config struct {
	App    config.AppConfig    `yaml:"app" mapstructure:"app"`
	Log    config.LogConfig    `yaml:"log" mapstructure:"log"`
	Vendor config.VendorConfig `yaml:"vendor" mapstructure:"vendor"`
}

// app holds state shared by subcommands once the root pre-run has finished.
type app struct {
	configPath string
	output     string

	cfg      Config
	catalog  *codes.Catalog
	resolver *status.Resolver
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "facecodes",
		Short:        "Inspect face authentication error and acquisition codes",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config-dir", "./configs", "directory holding config_<APP_ENV>.yaml")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "output format: text or json")

	root.AddCommand(newListCmd(a), newDescribeCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if a.output != "text" && a.output != "json" {
		return fmt.Errorf("unsupported output %q", a.output)
	}
	opts := config.LoadOptions{ConfigPath: a.configPath, EnvPrefix: "FACECODES", AllowNoConfig: true}
	if err := config.LoadConfig(&a.cfg, opts); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg.App.ApplyDefaults()
	a.cfg.Log.ApplyDefaults()
	a.cfg.Vendor.ApplyDefaults()

	if err := bootstrap.InitLoggerWithOptions(a.cfg.Log, bootstrap.LoggerOptions{
		ServiceName: "facecodes",
		Stdout:      cmd.ErrOrStderr(),
	}); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	a.catalog = codes.NewCatalog(a.cfg.Vendor.ErrorMessages, a.cfg.Vendor.AcquiredMessages)
	a.resolver = status.NewResolver(a.catalog)

	nErr, nAcq := a.catalog.Len()
	log.WithFields(log.Fields{
		"env":                 a.cfg.App.Env,
		"vendor":              a.cfg.Vendor.Name,
		"vendor_errors":       nErr,
		"vendor_acquisitions": nAcq,
	}).Debug("registry loaded")
	return nil
}
