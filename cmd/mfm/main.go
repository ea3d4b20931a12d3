package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/mfm/internal/app"
	"github.com/kk-code-lab/mfm/internal/config"
	fsutil "github.com/kk-code-lab/mfm/internal/fs"
	"github.com/kk-code-lab/mfm/internal/lastdir"
	"github.com/kk-code-lab/mfm/internal/logging"
	"github.com/kk-code-lab/mfm/internal/shellsetup"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

// setupAuto is the --setup value when no shell is named.
const setupAuto = "auto"

var parentShellDetector = shellsetup.DetectParentShellName

var errNotTerminal = errors.New("mfm needs an interactive terminal")

type options struct {
	configPath string
	resume     bool
	showHidden bool
	logFile    string
	setup      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "mfm [path]",
		Short: "Minimal keyboard-driven file manager",
		Long: `mfm browses one directory at a time. Move with j/k or the arrows,
enter directories with Right/Enter, go up with Left, search with /, and
quit with q. Use --setup to print a shell function that follows mfm's
last directory.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/mfm/config.yaml)")
	flags.BoolVarP(&opts.resume, "resume", "r", false, "start in the directory of the previous session")
	flags.BoolVarP(&opts.showHidden, "show-hidden", "a", false, "show dotfiles")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVarP(&opts.setup, "setup", "s", "", "print shell integration (optionally --setup=SHELL) and exit")
	flags.Lookup("setup").NoOptDefVal = setupAuto

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("show-hidden") {
		cfg.ShowHidden = opts.showHidden
	}
	if opts.logFile != "" {
		cfg.Log.Path = opts.logFile
	}

	logCfg, err := cfg.LoggingConfig()
	if err != nil {
		return err
	}
	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("cannot initialise logging: %w", err)
	}
	defer func() {
		_ = logging.Sync()
	}()

	lastDirFile, err := cfg.LastDirPath()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("setup") {
		return printSetup(cmd.OutOrStdout(), opts.setup, lastDirFile)
	}

	startDir, err := startDirectory(args, opts.resume, lastDirFile)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	svc, err := fsutil.NewOSService(fsutil.OSOptions{Ignore: cfg.Ignore})
	if err != nil {
		return err
	}

	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cannot open terminal: %w", err)
	}

	app, err := apppkg.NewApplication(screen, svc, apppkg.Options{
		StartDir:    startDir,
		ShowHidden:  cfg.ShowHidden,
		Editor:      cfg.Editor,
		Shell:       cfg.Shell,
		LastDirFile: lastDirFile,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	return app.Run()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadConfig()
	}
	expanded, err := config.ExpandUserPath(path)
	if err != nil {
		return nil, err
	}
	return config.LoadConfigFile(expanded)
}

// startDirectory picks the explicit path argument, then the previous
// session's directory when resuming, then the working directory.
func startDirectory(args []string, resume bool, lastDirFile string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if resume {
		dir, err := lastdir.Load(lastDirFile)
		if err == nil {
			return dir, nil
		}
		logging.Warn("cannot resume previous directory",
			logging.String("file", lastDirFile), logging.Err(err))
	}
	return os.Getwd()
}

func printSetup(out io.Writer, shell, lastDirFile string) error {
	if shell == setupAuto {
		shell = ""
	}
	return shellsetup.PrintSetup(shell, shellsetup.Config{
		DetectParent: parentShellDetector,
		LastDirFile:  lastDirFile,
		Out:          out,
	})
}
