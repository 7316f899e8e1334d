package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarystats/internal/client"
	"github.com/fr4nk3nst1ner/salarystats/internal/config"
	"github.com/fr4nk3nst1ner/salarystats/internal/logger"
	"github.com/fr4nk3nst1ner/salarystats/internal/models"
	"github.com/fr4nk3nst1ner/salarystats/internal/provider"
	"github.com/fr4nk3nst1ner/salarystats/internal/ui"
	"github.com/fr4nk3nst1ner/salarystats/internal/utils"
)

const progressTemplate = `{{string . "prefix"}}{{counters . }} {{bar . }} {{percent . }}`

type options struct {
	configPath string
	envFile    string
	source     string
	languages  string
	proxyURL   string
	timeout    time.Duration
	format     string
	debug      bool
	noProgress bool
	noColor    bool
	examples   bool

	// Banner control flags (two aliases for the same functionality)
	silence  bool
	noBanner bool
}

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 salarystats Usage Examples 📋")
	fmt.Println("\n1. Average salaries for the default languages on HeadHunter and SuperJob:")
	fmt.Println("   SJ_TOKEN=v3.r.xxx salarystats")

	fmt.Println("\n2. Query HeadHunter only, no SuperJob key needed:")
	fmt.Println("   salarystats --source hh")

	fmt.Println("\n3. Compare a few languages and silence the banner:")
	fmt.Println("   salarystats --languages \"Go,Rust,Python\" --silence")

	fmt.Println("\n4. Read the SuperJob key from a dotenv file and use a YAML config:")
	fmt.Println("   salarystats --env-file secret.env --config salarystats.yaml")

	fmt.Println("\n5. Emit JSON through a proxy:")
	fmt.Println("   salarystats --format json --proxy http://localhost:8080")
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "salarystats",
		Short: "Average programmer salaries per language from hh.ru and superjob.ru",
		Long: `Searches HeadHunter and SuperJob for "Программист <language>" vacancies,
estimates a salary for every vacancy paid in rubles and prints the average per
language, one table per job board.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.debug)
			if opts.noColor {
				pterm.DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file (default $SALARYSTATS_CONFIG or "+config.DefaultConfigFile+")")
	f.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "dotenv file with SJ_TOKEN")
	f.StringVar(&opts.source, "source", "", "Source to query (headhunter|hh, superjob|sj). If not specified, queries both.")
	f.StringVar(&opts.languages, "languages", "", "Comma separated languages, overrides the config")
	f.StringVar(&opts.proxyURL, "proxy", "", "Proxy URL to use")
	f.DurationVar(&opts.timeout, "timeout", 0, "HTTP client timeout (default from config, 30s)")
	f.StringVar(&opts.format, "format", "table", "Output format: table or json")
	f.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	f.BoolVar(&opts.noProgress, "no-progress", false, "Hide progress bars")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	f.BoolVar(&opts.examples, "examples", false, "Show usage examples")
	f.BoolVar(&opts.silence, "silence", false, "Silence the banner")
	f.BoolVar(&opts.noBanner, "nobanner", false, "Silence the banner (alias for --silence)")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	ui.PrintBanner(opts.silence || opts.noBanner || opts.format == "json")

	if opts.examples {
		printExamples()
		return nil
	}

	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("invalid format %q: must be table or json", opts.format)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	sources := utils.AllSources()
	if opts.source != "" {
		if !utils.IsValidSource(opts.source) {
			return fmt.Errorf("%w: %q, must be one of: headhunter, superjob", provider.ErrUnknownSource, opts.source)
		}
		sources = []string{utils.NormalizeSource(opts.source)}
	}

	if err := cfg.Validate(sources); err != nil {
		return err
	}

	httpClient := client.CreateProxyHTTPClient(cfg.Proxy, cfg.Timeout)

	var reports []models.Report
	for _, src := range sources {
		p, err := provider.New(src, cfg, httpClient)
		if err != nil {
			return err
		}

		log.Debug().Str("provider", p.Name()).Strs("languages", cfg.Languages).Msg("collecting salaries")

		bar := startProgress(p.Title(), len(cfg.Languages), opts.noProgress || opts.format == "json")
		report, err := provider.Collect(ctx, p, cfg.Languages, provider.Options{
			SearchText: cfg.SearchText,
			MaxPages:   cfg.MaxPages,
			OnLanguage: func(models.LanguageStats) {
				if bar != nil {
					bar.Increment()
				}
			},
		})
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return err
		}

		reports = append(reports, report)
	}

	return printReports(reports, opts)
}

// loadConfig layers defaults, the YAML file, the environment and the flags
func loadConfig(opts *options) (*config.Config, error) {
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return nil, err
	}

	path := opts.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	if path == "" {
		path = config.DefaultConfigFile
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if opts.languages != "" {
		cfg.Languages = utils.ParseLanguages(opts.languages)
	}
	if opts.proxyURL != "" {
		cfg.Proxy = opts.proxyURL
	}
	if opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}

	return cfg, nil
}

func startProgress(title string, total int, hidden bool) *pb.ProgressBar {
	if hidden {
		return nil
	}
	bar := pb.ProgressBarTemplate(progressTemplate).New(total)
	bar.SetWriter(os.Stderr)
	bar.Set("prefix", title+" ")
	return bar.Start()
}

func printReports(reports []models.Report, opts *options) error {
	if opts.format == "json" {
		out, err := ui.RenderJSON(reports)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	for i, report := range reports {
		if i > 0 {
			fmt.Println()
		}
		table, err := ui.RenderTable(report, !opts.noColor)
		if err != nil {
			return err
		}
		fmt.Println(table)
		fmt.Println(ui.RenderSummary(report))
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		l := logger.Get()
		l.Error().Err(err).Msg("salarystats failed")
		stop()
		os.Exit(1)
	}
}
