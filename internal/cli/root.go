// Package cli implements the toolkit command line.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/on-the-ground/toolkit_ive_go/access"
	"github.com/on-the-ground/toolkit_ive_go/configkeys"
	"github.com/on-the-ground/toolkit_ive_go/overload"
	"github.com/on-the-ground/toolkit_ive_go/shared/logging"
)

const defaultLogLevel = "warn"

var version = "dev"

// SetVersion sets the version string reported by --version.
func SetVersion(v string) {
	version = v
}

type app struct {
	v        *viper.Viper
	cfgFile  string
	logger   *zap.Logger
	accessor *access.Accessor
}

// NewRootCmd builds the toolkit command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "toolkit",
		Short: "Read, write and coerce values in YAML documents",
		Long: `toolkit reads and writes elements of YAML documents by key path.

Under a mapping every key is used as a string. Elsewhere keys that look
like unsigned numbers are used as sequence indexes. Mappings with
non-string keys, such as an unquoted 80:, cannot be walked.

Examples:
  toolkit get config.yaml servers 0 host
  toolkit set config.yaml 8080 servers 0 port
  toolkit coerce 10 1.5 abc`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ~/.config/toolkit/config.yaml)")
	flags.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json); defaults to console on a terminal")
	flags.Bool("strict", false, "skip overloads left with an unbound required parameter")

	_ = a.v.BindPFlag(configkeys.LogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(configkeys.LogFormat, flags.Lookup("log-format"))
	_ = a.v.BindPFlag(configkeys.DispatchStrictArity, flags.Lookup("strict"))

	root.AddCommand(
		newGetCmd(a),
		newSetCmd(a),
		newCoerceCmd(a),
	)
	return root
}

// Execute runs the toolkit command line against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	logger, err := logging.New(a.v.GetString(configkeys.LogLevel), a.logFormat())
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))

	opts := []overload.Option{overload.WithLogger(a.logger)}
	if a.v.GetBool(configkeys.DispatchStrictArity) {
		opts = append(opts, overload.WithStrictArity())
	}
	a.accessor = access.NewAccessor(opts...)
	a.logger.Debug("configured",
		zap.String("configFile", a.v.ConfigFileUsed()),
		zap.Bool("strict", a.v.GetBool(configkeys.DispatchStrictArity)),
	)
	return nil
}

func (a *app) loadConfig() error {
	a.v.SetDefault(configkeys.LogLevel, defaultLogLevel)
	a.v.SetEnvPrefix(configkeys.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(configkeys.Delimiter(), "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".config", "toolkit"))
	}
	a.v.SetConfigName("config")
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func (a *app) logFormat() logging.Format {
	if f := a.v.GetString(configkeys.LogFormat); f != "" {
		return logging.Format(f)
	}
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return logging.FormatConsole
	}
	return logging.FormatJSON
}
