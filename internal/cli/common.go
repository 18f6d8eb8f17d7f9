package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

func NewSpinner(w io.Writer) *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(w))
}

// stringFlagOrDefault returns the flag value when it was set on the command line, and fallback otherwise
func stringFlagOrDefault(cmd *cobra.Command, flag, value, fallback string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return fallback
}
