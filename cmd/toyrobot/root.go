package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"toyrobot/internal/config"
	"toyrobot/internal/logs"
	"toyrobot/internal/store"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errRunFailed is returned once a failed run has been reported.
var errRunFailed = errors.New("run failed")

var errStoreDisabled = errors.New("store is disabled (set store: true in config.yaml)")

// sysError marks failures of the environment rather than of the input.
type sysError struct {
	err error
}

func (e sysError) Error() string { return e.err.Error() }

func (e sysError) Unwrap() error { return e.err }

// app holds global flag values and the resources opened for a command.
type app struct {
	configDir string
	dataDir   string
	jsonMode  bool
	board     bool
	noStore   bool

	cfg     *config.Config
	log     *slog.Logger
	store   *store.Store
	closers []io.Closer
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := a.close(); cerr != nil && err == nil {
		err = sysError{cerr}
	}
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errRunFailed):
		return exitUserError
	}
	fmt.Fprintln(stderr, "Error:", err)
	var se sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "toyrobot",
		Short: "Drive a toy robot around a 5x5 table",
		Long: `toyrobot reads PLACE, MOVE, LEFT, RIGHT and REPORT commands, one per line,
and moves a robot around a 5x5 table. Commands before the first PLACE are
ignored; any command that would drop the robot off the table stops the run.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $TOYROBOT_CONFIG_DIR or .toyrobot)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory holding toyrobot.db (overrides data_dir)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&a.board, "board", false, "draw the table after a run")
	root.PersistentFlags().BoolVar(&a.noStore, "no-store", false, "do not record runs")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// init loads config, builds the logger and opens the store.
func (a *app) init(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	logCfg, err := logs.LoadConfig(nil)
	if err != nil {
		return sysError{fmt.Errorf("load log config: %w", err)}
	}
	log, closer, err := logs.New(logCfg, cmd.ErrOrStderr())
	if err != nil {
		return sysError{fmt.Errorf("init logger: %w", err)}
	}
	a.log = log
	a.closers = append(a.closers, closer)

	cfg, err := config.Load(a.resolveConfigDir())
	if err != nil {
		return sysError{fmt.Errorf("load config: %w", err)}
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.jsonMode {
		cfg.Output = config.OutputJSON
	}
	if a.board {
		cfg.Board = true
	}
	if a.noStore {
		cfg.Store = false
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "dir", cfg.Dir, "data_dir", cfg.DataDir, "store", cfg.Store, "output", cfg.Output)

	if !cfg.Store {
		return nil
	}
	s, err := store.Open(cmd.Context(), cfg.DataDir)
	if err != nil {
		return sysError{fmt.Errorf("open store: %w", err)}
	}
	a.store = s
	a.closers = append(a.closers, s)
	return nil
}

func (a *app) resolveConfigDir() string {
	if a.configDir != "" {
		return a.configDir
	}
	if v := os.Getenv("TOYROBOT_CONFIG_DIR"); v != "" {
		return v
	}
	return config.DefaultDir
}

func (a *app) requireStore() (*store.Store, error) {
	if a.store == nil {
		return nil, errStoreDisabled
	}
	return a.store, nil
}

func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}
