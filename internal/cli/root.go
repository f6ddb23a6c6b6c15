package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"slipbox/internal/address"
	"slipbox/internal/config"
	"slipbox/internal/format"
	"slipbox/internal/gesture"
	"slipbox/internal/labels"
	"slipbox/internal/logger"
	"slipbox/internal/store"
	"slipbox/internal/tui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type App struct {
	Count      int
	Seed       int64
	Weighting  string
	Labels     string
	Format     string
	PrettyJSON bool
	Display    string
	Indent     bool
	LogLevel   string
	LogFormat  string

	cfg *config.Config
	log logger.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "slipbox",
		Short:        "Luhmann-addressed outlines with subtree drag and drop",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  slipbox

  # Print a reproducible outline
  slipbox generate --seed 42 --count 20 --format text

  # Drop zones while dragging item 7 over item 3, then drop
  slipbox zones 7 3 --seed 42
  slipbox move 7 3 7+child --seed 42

  # Address codec
  slipbox encode 2.3.12
  slipbox decode 2c12
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.resolve(cmd.Flags(), cmd.ErrOrStderr())
	}

	pf := cmd.PersistentFlags()
	pf.IntVar(&app.Count, "count", 0, "Number of generated items (env SLIPBOX_COUNT; default from config, 100)")
	pf.Int64Var(&app.Seed, "seed", 0, "Random seed; 0 picks one (env SLIPBOX_SEED)")
	pf.StringVar(&app.Weighting, "weighting", "", "Outline shape: deep|wide|balanced (env SLIPBOX_WEIGHTING)")
	pf.StringVar(&app.Labels, "labels", "", "File with one label per line; overrides --count (env SLIPBOX_LABELS)")
	pf.StringVar(&app.Format, "format", "", "Output format: json|edn|text (env SLIPBOX_FORMAT)")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	pf.StringVar(&app.Display, "display", "", "Address display for text/TUI: prefix|suffix|hidden (env SLIPBOX_DISPLAY)")
	pf.BoolVar(&app.Indent, "indent", true, "Indent rows by depth in text/TUI output")
	pf.StringVar(&app.LogLevel, "log-level", "", "Log level: debug|info|warn|error (env SLIPBOX_LOG_LEVEL)")
	pf.StringVar(&app.LogFormat, "log-format", "", "Log format: text|json (env SLIPBOX_LOG_FORMAT)")

	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newSpanCmd(app))
	cmd.AddCommand(newZonesCmd(app))
	cmd.AddCommand(newMoveCmd(app))
	cmd.AddCommand(newFrontCmd(app))
	cmd.AddCommand(newReplayCmd(app))
	cmd.AddCommand(newEncodeCmd(app))
	cmd.AddCommand(newDecodeCmd(app))
	cmd.AddCommand(newPublishCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// resolve fills unset flags from SLIPBOX_* env vars, then the config file.
func (app *App) resolve(flags *pflag.FlagSet, logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	app.cfg = cfg

	str := func(name, env string, dst *string, fallback string) {
		if flags.Changed(name) {
			return
		}
		*dst = envOr(env, fallback)
	}
	str("weighting", "SLIPBOX_WEIGHTING", &app.Weighting, cfg.Outline.StepWeighting)
	str("labels", "SLIPBOX_LABELS", &app.Labels, cfg.Outline.Labels)
	str("format", "SLIPBOX_FORMAT", &app.Format, "json")
	str("display", "SLIPBOX_DISPLAY", &app.Display, string(cfg.Display.Mode))
	str("log-level", "SLIPBOX_LOG_LEVEL", &app.LogLevel, cfg.Log.Level)
	str("log-format", "SLIPBOX_LOG_FORMAT", &app.LogFormat, cfg.Log.Format)

	if !flags.Changed("count") {
		app.Count = cfg.Outline.Count
		if v := os.Getenv("SLIPBOX_COUNT"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("SLIPBOX_COUNT: %w", err)
			}
			app.Count = n
		}
	}
	if !flags.Changed("seed") {
		app.Seed = cfg.Outline.Seed
		if v := os.Getenv("SLIPBOX_SEED"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("SLIPBOX_SEED: %w", err)
			}
			app.Seed = n
		}
	}
	if !flags.Changed("indent") {
		app.Indent = cfg.Indent()
	}

	if app.Count < 0 {
		return fmt.Errorf("--count must be >= 0 (got %d)", app.Count)
	}
	if !format.Valid(app.Format) {
		return fmt.Errorf("unknown format: %s (expected json|edn|text)", app.Format)
	}
	if _, err := format.ParseDisplay(app.Display); err != nil {
		return err
	}
	level, err := logger.ParseLevel(app.LogLevel)
	if err != nil {
		return err
	}
	lf, err := logger.ParseFormat(app.LogFormat)
	if err != nil {
		return err
	}
	app.log = logger.New(logger.WithLevel(level), logger.WithFormat(lf), logger.WithOutput(logOut))
	return nil
}

// seeded builds the outline every command works on. The same seed, count,
// weighting and labels always give the same keys and addresses.
func (app *App) seeded() (*store.Store, int64, error) {
	w, err := address.ParseStepWeighting(app.Weighting)
	if err != nil {
		return nil, 0, err
	}
	seed := app.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var names []string
	if app.Labels != "" {
		f, err := os.Open(app.Labels)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		if names, err = labels.Read(f); err != nil {
			return nil, 0, fmt.Errorf("read labels %s: %w", app.Labels, err)
		}
	} else {
		names = labels.Generate(app.Count, rng)
	}

	s := store.New(names, address.WithWeighting(w), address.WithRand(rng))
	app.logger().Debug("outline seeded", "seed", seed, "weighting", w.Name, "items", s.Len())
	return s, seed, nil
}

func (app *App) controller() (*gesture.Controller, int64, error) {
	s, seed, err := app.seeded()
	if err != nil {
		return nil, 0, err
	}
	return gesture.New(s, gesture.WithLogger(app.logger())), seed, nil
}

func (app *App) logger() logger.Logger {
	if app.log == nil {
		return logger.Nop()
	}
	return app.log
}

func (app *App) display() format.Display {
	d, _ := format.ParseDisplay(app.Display)
	return d
}

func runTUI(app *App) error {
	// Logs never go to the terminal the TUI draws on.
	log := logger.Nop()
	path := envOr("SLIPBOX_LOG", "")
	if path == "" && app.cfg != nil {
		path = app.cfg.Log.File
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		level, _ := logger.ParseLevel(app.LogLevel)
		lf, _ := logger.ParseFormat(app.LogFormat)
		log = logger.New(logger.WithOutput(f), logger.WithLevel(level), logger.WithFormat(lf))
	}
	app.log = log

	ctrl, seed, err := app.controller()
	if err != nil {
		return err
	}
	log.Info("tui start", "seed", seed, "items", ctrl.Store().Len())
	return tui.Run(ctrl, tui.Options{Display: app.display(), Indent: app.Indent, Log: log})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// envelope is the {"data": ...} wrapper every command prints. text, when set,
// is used for --format text.
type envelope struct {
	Data any `json:"data"`

	text format.Texter
}

func (e envelope) WriteText(w io.Writer) error {
	if e.text == nil {
		return format.WriteJSON(w, e, true)
	}
	return e.text.WriteText(w)
}

type textFunc func(w io.Writer) error

func (f textFunc) WriteText(w io.Writer) error { return f(w) }

func writeOut(cmd *cobra.Command, app *App, data any, text format.Texter) error {
	return format.Write(cmd.OutOrStdout(), envelope{Data: data, text: text}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
