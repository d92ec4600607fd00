package enrich

import (
	"fmt"
	"strings"

	"recast"
)

// MaxReferenceChars bounds how much of each reference's plain text goes
// into the prompt.
const MaxReferenceChars = 2000

// BuildPrompt assembles the rewrite prompt for an article and its
// references. The output is deterministic: same inputs, same prompt.
func BuildPrompt(title, contentHTML string, refs []*recast.Reference) string {
	var sections []string
	for i, ref := range refs {
		sections = append(sections, fmt.Sprintf("Reference %d: %s\nContent (truncated):\n%s",
			i+1, ref.URL, truncateRunes(ref.Text, MaxReferenceChars)))
	}

	var b strings.Builder
	b.WriteString("You are an expert technical writer. Rewrite the article below so that it is clearer, better structured, and more engaging, drawing on the style and depth of the reference articles.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Do not plagiarize: never copy sentences verbatim from the references.\n")
	b.WriteString("- Preserve the factual meaning of the original article.\n")
	b.WriteString("- Respond with semantic HTML only (headings, paragraphs, lists).\n")
	b.WriteString("- Do not include <html>, <head>, or <body> wrappers.\n\n")
	b.WriteString(fmt.Sprintf("Original article title: %s\n\n", title))
	b.WriteString(fmt.Sprintf("Original article content:\n%s\n\n", contentHTML))
	b.WriteString(strings.Join(sections, "\n\n"))
	return b.String()
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
