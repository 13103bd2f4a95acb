package summary

import (
	"strings"
)

// TakeawaysHeading separates the summary paragraph from the bullet list in
// the model output.
const TakeawaysHeading = "Key Takeaways:"

const NoTakeaways = "No key takeaways found."

const promptTemplate = "Please summarize the following YouTube video transcript.\n\n" +
	"1. Provide a detailed summary paragraph.\n" +
	"2. Provide 4-6 key takeaways as bullet points, starting with a heading '" + TakeawaysHeading + "'.\n\n" +
	"Transcript:\n"

type Result struct {
	Summary      string
	KeyTakeaways string
}

// BuildPrompt appends the transcript verbatim to the fixed instructions.
func BuildPrompt(transcript string) string {
	return promptTemplate + transcript
}

// Split cuts raw model output on the first takeaways heading. Without a
// heading the whole text is the summary.
func Split(raw string) Result {
	raw = strings.TrimSpace(raw)

	summary, takeaways, found := strings.Cut(raw, TakeawaysHeading)
	if !found {
		return Result{Summary: raw, KeyTakeaways: NoTakeaways}
	}

	return Result{
		Summary:      strings.TrimSpace(summary),
		KeyTakeaways: strings.TrimSpace(takeaways),
	}
}
