package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tkc/tasklist-checker/internal/config"
	"github.com/tkc/tasklist-checker/internal/log"
	loglogrus "github.com/tkc/tasklist-checker/internal/log/logrus"
)

// Version はビルド時に -ldflags で上書きされる
var Version = "dev"

const (
	loggerTypeDefault = "default"
	loggerTypeJSON    = "json"
)

var (
	cfg     *config.Config
	cfgPath string
	logger  log.Logger = log.Noop

	configFlag string
	debug      bool
	noLog      bool
	noColor    bool
	loggerType string
)

// rootCmd はルートコマンド
var rootCmd = &cobra.Command{
	Use:   "tasklist-checker",
	Short: "Check that every task in a pull request checklist is done",
	Long: `tasklist-checker collects the markdown task lists of a pull request
and its comments, and reports them as a GitHub check run.

The check stays in progress (or fails, with uncompleted_as_error) until
every task is checked.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfgPath = configFlag
		if cfgPath == "" {
			cfgPath, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}

		cfg, err = config.LoadWithPrecedence(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = newLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return nil
	},
}

// newLogger はフラグに応じたロガーを返す
// ログは標準エラーに出し、標準出力はレポート用に空けておく
func newLogger(w io.Writer) (log.Logger, error) {
	if noLog {
		return log.Noop, nil
	}

	logrusLog := logrus.New()
	logrusLog.Out = w
	if debug {
		logrusLog.SetLevel(logrus.DebugLevel)
	}

	switch loggerType {
	case loggerTypeDefault:
		logrusLog.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !noColor,
			DisableColors: noColor,
		})
	case loggerTypeJSON:
		logrusLog.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown logger type %q", loggerType)
	}

	l := loglogrus.NewLogrus(logrus.NewEntry(logrusLog)).WithValues(log.Kv{
		"version": Version,
	})
	l.Debugf("Debug level is enabled")

	return l, nil
}

// Execute はCLIを実行する
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.tasklist-checker/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noLog, "no-log", false, "disable logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored logs")
	rootCmd.PersistentFlags().StringVar(&loggerType, "logger", loggerTypeDefault, "log format (default, json)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(authCmd)
}
