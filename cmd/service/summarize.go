package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"jamesfarrell.me/youtube-summarizer/internal/summary"
)

func newSummarizeCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a transcript read from a file or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript, err := readTranscript(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			sum, err := a.summarizer()
			if err != nil {
				return err
			}

			ctx := a.logger.WithContext(cmd.Context())
			result, err := sum.Summarize(ctx, transcript)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n%s\n", result.Summary, summary.TakeawaysHeading, result.KeyTakeaways)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Transcript file (default: stdin)")

	return cmd
}

func readTranscript(stdin io.Reader, file string) (string, error) {
	var data []byte
	var err error
	if file == "" || file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("error reading transcript: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
