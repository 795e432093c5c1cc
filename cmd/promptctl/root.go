package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"prompt-optimizer/backend/internal/app"
	"prompt-optimizer/backend/internal/config"
	configdomain "prompt-optimizer/backend/internal/features/config/domain"
	"prompt-optimizer/backend/internal/logging"
	"prompt-optimizer/backend/internal/promptio"
)

var version = "dev"

// rootOptions carries the persistent flags down to the subcommands.
type rootOptions struct {
	configPath string
	dataDir    string
	debug      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "promptctl",
		Short: "Generate and optimize prompts for a target model",
		Long: `promptctl builds model-specific prompts from a goal, rewrites existing prompts
at minimal, balanced or maximum strength, scores them with lexical heuristics
and sends them to the configured model gateway for a quick test.

Template tables are read from the data directory; run "promptctl init" once
to write the defaults.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.ConfigPathFromEnv(), "Path to the app config file (yaml or json)")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Override the template data directory")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Services log to stderr at warn unless --debug is set.
		level := "warn"
		if opts.debug {
			level = "debug"
		}
		logging.Setup(level, "text", cmd.ErrOrStderr())
	}

	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newOptimizeCommand(opts))
	cmd.AddCommand(newEvaluateCommand())
	cmd.AddCommand(newTestCommand(opts))
	cmd.AddCommand(newInitCommand(opts))
	cmd.AddCommand(newInteractiveCommand(opts))
	cmd.AddCommand(newModelsCommand(opts))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}

// dataDirOverride applies --data-dir on top of whatever the config file says.
type dataDirOverride struct {
	config.AppConfigService
	dataDir string
}

func (d *dataDirOverride) LoadAppConfig() (*configdomain.AppConfig, error) {
	cfg, err := d.AppConfigService.LoadAppConfig()
	if err != nil {
		return nil, err
	}
	if d.dataDir != "" {
		cfg.DataDir = d.dataDir
	}
	return cfg, nil
}

func (o *rootOptions) configService() config.AppConfigService {
	// A missing .env is normal outside development.
	_ = godotenv.Load()
	return &dataDirOverride{AppConfigService: config.NewAppConfigService(o.configPath), dataDir: o.dataDir}
}

// loadApp reads the config and template tables and builds every service.
func (o *rootOptions) loadApp() (*app.App, error) {
	svc := o.configService()
	cfg, err := svc.LoadAppConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cfg, svc, o.configPath)
}

// readPrompt resolves the prompt from the positional argument, --file, or piped stdin.
func readPrompt(cmd *cobra.Command, args []string, file string) (string, error) {
	inline := ""
	if len(args) > 0 {
		inline = args[0]
	}
	return promptio.Resolve(inline, file, pipedInput(cmd.InOrStdin()))
}

// pipedInput returns nil when in is an interactive terminal so Resolve never blocks on it.
func pipedInput(in io.Reader) io.Reader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return in
}
