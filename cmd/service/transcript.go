package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"jamesfarrell.me/youtube-summarizer/internal/models"
	"jamesfarrell.me/youtube-summarizer/internal/transcription"
)

func newTranscriptCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "transcript <youtube-url>",
		Short: "Fetch a video transcript and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID, err := models.ExtractVideoID(args[0])
			if err != nil {
				return err
			}

			formatter, err := transcription.FormatterFor(format)
			if err != nil {
				return err
			}

			ctx := a.logger.WithContext(cmd.Context())
			text, err := a.transcriptService().FetchText(ctx, videoID, formatter)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or vtt")

	return cmd
}
