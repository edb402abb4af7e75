package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	xterm "github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studiowebux/docpeek/internal/cli"
	"github.com/studiowebux/docpeek/internal/clip"
	"github.com/studiowebux/docpeek/internal/config"
	"github.com/studiowebux/docpeek/internal/content"
	"github.com/studiowebux/docpeek/internal/delivery"
	"github.com/studiowebux/docpeek/internal/discovery"
	"github.com/studiowebux/docpeek/internal/fetcher"
	"github.com/studiowebux/docpeek/internal/keybinds"
	"github.com/studiowebux/docpeek/internal/logger"
	"github.com/studiowebux/docpeek/internal/render"
	"github.com/studiowebux/docpeek/internal/server"
	"github.com/studiowebux/docpeek/internal/tui"
	"github.com/studiowebux/docpeek/internal/types"
)

var (
	version = "0.1.0"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "docpeek",
	Short: "Copy and view documentation files from the terminal",
	Long: `docpeek pre-loads the files referenced by a documentation site (or a
local directory) and lets you copy them to the clipboard or read them in a
viewer. Files whose name contains "theory" are rendered as markdown, every
other file as highlighted source code.

Files are discovered from a manifest, from the copy/view buttons of an index
page, or by scanning a local directory.

Examples:
  docpeek                                  # Start the interactive TUI
  docpeek -s https://example.com/course/   # Use a remote source
  docpeek copy lessons/parser.rs           # Copy a file to the clipboard
  docpeek view algo_theory.md              # Print a formatted file
  docpeek check                            # Retrieve every file once
  docpeek serve                            # Host the source over HTTP`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTUI,
}

var copyCmd = &cobra.Command{
	Use:   "copy [file]",
	Short: "Copy a file's raw text to the clipboard",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCopy,
}

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Print a file formatted as theory or code",
	Long:  "Print a file formatted as theory or code. Output is raw when stdout is not a terminal.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the discovered files",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Retrieve every discovered file once and report failures",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the source files over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage TUI keybindings",
}

var keybindsExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the effective keybindings to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKeybindsExport,
}

var keybindsValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a keybindings file for conflicts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKeybindsValidate,
}

// Flags for every command
var (
	flagConfig    string
	flagSource    string
	flagIndex     string
	flagManifest  string
	flagInclude   []string
	flagClipboard string
	flagPlain     bool
	flagTimeout   time.Duration
	flagLogLevel  string
)

// Flags for subcommands
var (
	flagRaw        bool
	flagOutput     string
	flagQuery      string
	flagAddr       string
	flagAllowAll   bool
	flagForceWrite bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "Config file (default ~/.docpeek/config.yaml)")
	pf.StringVarP(&flagSource, "source", "s", "", "Base URL or local directory")
	pf.StringVar(&flagIndex, "index", "", "Index page listing the copy/view buttons")
	pf.StringVarP(&flagManifest, "manifest", "m", "", "YAML manifest listing the files")
	pf.StringSliceVar(&flagInclude, "include", nil, "Glob patterns for a directory scan")
	pf.StringVar(&flagClipboard, "clipboard", "", "Clipboard method (system/osc52)")
	pf.BoolVar(&flagPlain, "plain", false, "Disable markdown rendering and syntax highlighting")
	pf.DurationVar(&flagTimeout, "timeout", 0, "Fetch timeout (0 keeps the transport defaults)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error)")

	viewCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the raw text")
	listCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/json/yaml)")
	listCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath expression over the JSON rows")
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address")
	serveCmd.Flags().BoolVar(&flagAllowAll, "allow-all-origins", false, "Allow every CORS origin")
	keybindsExportCmd.Flags().BoolVarP(&flagForceWrite, "force", "f", false, "Overwrite an existing file")

	keybindsCmd.AddCommand(keybindsExportCmd, keybindsValidateCmd)
	rootCmd.AddCommand(copyCmd, viewCmd, listCmd, checkCmd, serveCmd, keybindsCmd)
}

// app holds the components wired from the configuration
type app struct {
	cfg        *config.Config
	log        *zap.Logger
	discovered *discovery.Result
	manager    *content.Manager
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	path := flagConfig
	if path == "" {
		path = config.ConfigFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = flagSource
	}
	if flags.Changed("index") {
		cfg.Index = flagIndex
	}
	if flags.Changed("manifest") {
		cfg.Manifest = flagManifest
	}
	if flags.Changed("include") {
		cfg.Include = flagInclude
	}
	if flags.Changed("clipboard") {
		cfg.Clipboard = flagClipboard
	}
	if flagPlain {
		cfg.Markdown = false
		cfg.Highlight = false
	}
	if flags.Changed("timeout") {
		cfg.FetchTimeout = flagTimeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup wires the fetcher, discovery and content manager
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(config.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	f, err := fetcher.New(cfg.Source, fetcher.Options{Timeout: cfg.FetchTimeout})
	if err != nil {
		return nil, err
	}

	discovered, err := discovery.Load(cmd.Context(), cfg, f)
	if err != nil {
		return nil, err
	}
	log.Info("Discovered files",
		zap.String("source", cfg.Source),
		zap.String("origin", string(discovered.Origin)),
		zap.Int("controls", len(discovered.Controls)),
		zap.Int("files", len(discovered.Files())),
	)

	return &app{
		cfg:        cfg,
		log:        log,
		discovered: discovered,
		manager:    content.NewManager(nil, f, log),
	}, nil
}

// helper builds the copy/view helper with terminal renderers
func (a *app) helper(width int) (*delivery.Helper, error) {
	cb, err := clip.New(a.cfg.Clipboard, nil)
	if err != nil {
		return nil, err
	}
	renderers := render.Select(render.Options{
		Markdown:      a.cfg.Markdown,
		Highlight:     a.cfg.Highlight,
		MarkdownStyle: a.cfg.MarkdownStyle,
		CodeStyle:     a.cfg.CodeStyle,
		Width:         width,
	})
	a.log.Info("Selected renderers",
		zap.String("theory", renderers.Theory.Name()),
		zap.String("code", renderers.Code.Name()),
	)
	return delivery.NewHelper(a.manager, cb, renderers, a.log), nil
}

func (a *app) env(h *delivery.Helper) cli.Env {
	return cli.Env{Helper: h, Controls: a.discovered.Controls, Out: os.Stdout, Err: os.Stderr}
}

// terminalWidth is the stdout width, or the renderer default
func terminalWidth() int {
	if w, _, err := xterm.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return render.DefaultWidth
}

// fileArg returns the file argument, or asks for one when stdin is a terminal
func fileArg(a *app, args []string, kind types.ControlKind) (types.FileID, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !cli.IsTerminal(os.Stdin) {
		return "", errors.New("no file given")
	}
	return cli.PickFile(discovery.Rows(a.discovered.Controls), kind)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	h, err := a.helper(render.DefaultWidth)
	if err != nil {
		return err
	}

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	m := tui.New(tui.Options{
		Context:  cmd.Context(),
		Helper:   h,
		Keybinds: registry,
		Logger:   a.log,
		Source:   a.cfg.Source,
		Controls: a.discovered.Controls,
	})
	return tui.Run(m)
}

func runCopy(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	file, err := fileArg(a, args, types.ControlCopy)
	if err != nil {
		return err
	}
	h, err := a.helper(render.DefaultWidth)
	if err != nil {
		return err
	}
	return cli.Copy(cmd.Context(), a.env(h), file)
}

func runView(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	file, err := fileArg(a, args, types.ControlView)
	if err != nil {
		return err
	}
	h, err := a.helper(terminalWidth())
	if err != nil {
		return err
	}
	raw := flagRaw || !cli.IsTerminal(os.Stdout)
	return cli.View(cmd.Context(), a.env(h), cli.ViewOptions{File: file, Raw: raw})
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	return cli.List(a.env(nil), cli.ListOptions{Format: flagOutput, Query: flagQuery})
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	h, err := a.helper(render.DefaultWidth)
	if err != nil {
		return err
	}
	_, err = cli.Check(cmd.Context(), a.env(h), cli.NewReporter(os.Stderr))
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	cfg := server.Config{Addr: a.cfg.Serve.Addr, AllowAll: a.cfg.Serve.AllowAllOrigins}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = flagAddr
	}
	if flagAllowAll {
		cfg.AllowAll = true
	}

	renderers := render.SelectHTML(render.Options{
		Markdown:  a.cfg.Markdown,
		Highlight: a.cfg.Highlight,
		CodeStyle: a.cfg.CodeStyle,
	})
	srv := server.New(cfg, a.manager, renderers, a.discovered.Controls, a.log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	fmt.Fprintf(os.Stderr, "Serving %s on http://%s (%d files)\n", a.cfg.Source, cfg.Addr, len(a.discovered.Files()))

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func runKeybindsExport(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	path := config.KeybindsFile
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !flagForceWrite {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}
	if err := keybinds.SaveConfig(keybinds.ExportConfig(registry), path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Keybindings written to %s\n", path)
	return nil
}

func runKeybindsValidate(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	path := config.KeybindsFile
	if len(args) > 0 {
		path = args[0]
	}

	kc, err := keybinds.LoadConfig(path)
	if err != nil {
		return err
	}
	result := keybinds.NewValidator().ValidateConfig(kc)
	fmt.Fprint(os.Stdout, result.String())
	if result.HasErrors() {
		return fmt.Errorf("%d keybinding errors in %s", len(result.Errors), path)
	}
	return nil
}
