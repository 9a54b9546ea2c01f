package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	schedule "github.com/GooseInnaJar/schedule-solver"
)

var (
	exitFn = os.Exit

	// solveURL is fixed; a variable only so tests can point the CLI at a
	// local server.
	solveURL = schedule.DefaultSolveURL
)

type sendOptions struct {
	debug bool
}

func runSend(cmd *cobra.Command, path string, opts *sendOptions) error {
	log := newLogger(cmd.ErrOrStderr(), opts.debug)

	payload, err := schedule.LoadPayload(path)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrPayloadMissing):
			return exitWithError(cmd, fmt.Sprintf("the file '%s' was not found.", path), nil)
		case errors.Is(err, schedule.ErrPayloadSyntax):
			detail := syntaxDetail(err)

			return exitWithError(cmd, fmt.Sprintf("the file '%s' contains invalid JSON. Details: %s", path, detail), nil)
		default:
			return exitWithError(cmd, fmt.Sprintf("an error occurred while reading the file: %v", err), nil)
		}
	}

	log.Debug().Str("file", path).Int("payload_bytes", len(payload)).Msg("payload loaded")

	fmt.Fprintf(cmd.OutOrStdout(), "Sending request to %s with data from '%s'...\n", solveURL, path)

	client := schedule.NewClient(schedule.WithURL(solveURL), schedule.WithLogger(log))

	body, err := client.Solve(cmd.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnreachable):
			return exitWithError(cmd, fmt.Sprintf("connection to the server at %s failed.", solveURL), nil)
		case errors.Is(err, schedule.ErrSolveFailed):
			return exitWithError(cmd, fmt.Sprintf("error occurred during the request: %v", err), body)
		default:
			return exitWithError(cmd, fmt.Sprintf("error occurred during the request: %v", err), nil)
		}
	}

	pretty, err := schedule.Pretty(body)
	if err != nil {
		detail := syntaxDetail(err)

		return exitWithError(cmd, fmt.Sprintf("the server returned a response that is not valid JSON. Details: %s", detail), nil)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", pretty)

	return nil
}

// syntaxDetail recovers the JSON decoder's own diagnostic from a wrapped
// error, including the byte offset when the decoder reports one.
func syntaxDetail(err error) string {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return fmt.Sprintf("%v (at offset %d)", syn, syn.Offset)
	}

	return err.Error()
}

// exitWithError reports a diagnostic (and any server response body) on the
// error stream, then terminates with exit code 1.
func exitWithError(cmd *cobra.Command, msg string, body []byte) error {
	fmt.Fprintln(cmd.ErrOrStderr(), msg)

	if len(body) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "    Response Body: %s\n", body)
	}

	exitFn(1)

	return nil
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
