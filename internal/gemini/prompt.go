package gemini

import (
	"fmt"
	"strings"

	"github.com/MargotLh/market-research-assistant/internal/research"
)

// MaxReportWords bounds the length of a generated report.
const MaxReportWords = 500

// maxExcerptLength caps how much of each page goes into the prompt so the
// request stays well inside the model's context window.
const maxExcerptLength = 4000

// buildReportPrompt assembles the single generation prompt. The report must
// stay grounded in the supplied pages, so the prompt forbids outside
// knowledge and embeds the page content directly.
func buildReportPrompt(industry string, pages []research.Page, maxWords int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a market research assistant. Write a market research report on the %s industry.\n\n", industry)
	fmt.Fprintf(&b, "Base the report strictly on the Wikipedia content below. Do not use outside knowledge and do not invent figures.\n")
	fmt.Fprintf(&b, "Keep the report under %d words. Cover the industry's scope, key segments, notable players, and current trends where the sources support them.\n\n", maxWords)

	b.WriteString("Sources:\n\n")
	for i, p := range pages {
		fmt.Fprintf(&b, "[%d] %s (%s)\n%s\n\n", i+1, p.Title, p.URL, capExcerpt(p.Excerpt))
	}

	b.WriteString("Report:")
	return b.String()
}

// buildValidationPrompt asks for a bare YES or NO about whether the text
// names an industry.
func buildValidationPrompt(industry string) string {
	return fmt.Sprintf(`Is the following text a valid industry name or sector?

Text: %q

Respond with only "YES" if it's a valid industry/sector.
Respond with only "NO" if it's not.

Response:`, industry)
}

func capExcerpt(s string) string {
	if len(s) > maxExcerptLength {
		return s[:maxExcerptLength] + "..."
	}
	return s
}
