package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"toyrobot/internal/config"
	"toyrobot/internal/interpreter"
	"toyrobot/internal/store"
)

// runOutput is the JSON form of a run.
type runOutput struct {
	ID      string               `json:"id,omitempty"`
	Result  *interpreter.Result  `json:"result,omitempty"`
	Failure *interpreter.Failure `json:"error,omitempty"`
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a command script",
		Long: `Run executes the commands in file, or standard input when file is
omitted or "-". One command per line:

  PLACE X,Y,NORTH|EAST|SOUTH|WEST
  MOVE
  LEFT
  RIGHT
  REPORT`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args)
		},
	}
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	ctx := interpreter.NewContext(a.log)
	runErr := interpreter.Parse(input).Exec(ctx)
	var failure *interpreter.Failure
	if runErr != nil && !errors.As(runErr, &failure) {
		return runErr
	}
	res := ctx.Result()

	var id string
	if a.store != nil {
		rec, err := a.store.Save(cmd.Context(), store.NewRecord(input, res, runErr))
		if err != nil {
			return sysError{fmt.Errorf("save run: %w", err)}
		}
		id = rec.ID
		a.log.Info("run saved", "id", id)
	}

	out := cmd.OutOrStdout()
	if a.cfg.Output == config.OutputJSON {
		o := runOutput{ID: id, Failure: failure}
		if failure == nil {
			o.Result = res
		}
		if err := writeJSON(out, o); err != nil {
			return err
		}
	} else if failure != nil {
		printFailure(cmd.ErrOrStderr(), failure, input)
	} else if res.Report != "" {
		fmt.Fprintln(out, res.Report)
	}

	if a.cfg.Board {
		if err := ctx.Robot.Table().Render(out, ctx.Robot); err != nil {
			return err
		}
	}

	if failure != nil {
		return errRunFailed
	}
	return nil
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", sysError{fmt.Errorf("read stdin: %w", err)}
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(data), nil
}

func printFailure(w io.Writer, f *interpreter.Failure, input string) {
	fmt.Fprintf(w, "Error at line %d: %s\n", f.Line, f.Reason)
	fmt.Fprintf(w, "  position before error: %s\n", f.Before)
	fmt.Fprintf(w, "  position at error:     %s\n\n", f.AtError)
	fmt.Fprint(w, f.Snippet(input))
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
