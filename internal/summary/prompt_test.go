package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("line one\nline two")

	assert.True(t, strings.HasPrefix(prompt, "Please summarize the following YouTube video transcript.\n\n"))
	assert.Contains(t, prompt, "1. Provide a detailed summary paragraph.\n")
	assert.Contains(t, prompt, "starting with a heading 'Key Takeaways:'.\n\n")
	assert.True(t, strings.HasSuffix(prompt, "Transcript:\nline one\nline two"))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Result
	}{
		{
			name: "summary and takeaways",
			raw:  "Foo bar.\n\nKey Takeaways:\n- A\n- B",
			want: Result{Summary: "Foo bar.", KeyTakeaways: "- A\n- B"},
		},
		{
			name: "no heading",
			raw:  "Just a summary.",
			want: Result{Summary: "Just a summary.", KeyTakeaways: NoTakeaways},
		},
		{
			name: "heading repeated splits on first",
			raw:  "Intro\nKey Takeaways: one\nKey Takeaways: two",
			want: Result{Summary: "Intro", KeyTakeaways: "one\nKey Takeaways: two"},
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  \n Summary text \n\n Key Takeaways: \n - A \n",
			want: Result{Summary: "Summary text", KeyTakeaways: "- A"},
		},
		{
			name: "heading only",
			raw:  "Key Takeaways:",
			want: Result{Summary: "", KeyTakeaways: ""},
		},
		{
			name: "empty output",
			raw:  "",
			want: Result{Summary: "", KeyTakeaways: NoTakeaways},
		},
		{
			name: "markdown bold heading",
			raw:  "Summary.\n\n**Key Takeaways:**\n* A",
			want: Result{Summary: "Summary.\n\n**", KeyTakeaways: "**\n* A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Split(tt.raw))
		})
	}
}
