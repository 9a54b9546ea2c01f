package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	opts := &sendOptions{}
	root := &cobra.Command{
		Use:   "request <json-file>",
		Short: "Send a scheduling problem to the solver service",
		Long: `Send the contents of a JSON file to the schedule-solver service and
print the formatted solver response.

The file is checked for JSON well-formedness before sending, and its exact
bytes are used as the request body.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past this point errors are runtime failures, not usage mistakes.
			cmd.SilenceUsage = true

			return runSend(cmd, args[0], opts)
		},
	}

	root.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	return root
}
