package wikipedia

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/MargotLh/market-research-assistant/internal/research"
)

// industryKeywords boost pages that discuss an industry as an economic
// subject rather than a namesake.
var industryKeywords = []string{
	"industry", "sector", "market", "economics", "value chain", "supply chain",
}

// noiseWords mark pages about crimes, court cases, and entertainment works
// that happen to share a name with the industry.
var noiseWords = []string{
	"killing", "murder", "death", "shooting", "attack", "trial", "case",
	"episode", "film", "song", "album", "game",
}

// scorePage rates how relevant a page looks for industry research. Higher
// is better; scores can go negative.
func scorePage(title, excerpt, industry string) int {
	titleLower := strings.ToLower(title)
	excerptLower := strings.ToLower(excerpt)
	industryLower := strings.ToLower(industry)

	score := 0
	if strings.Contains(titleLower, industryLower) {
		score += 10
	}
	for _, kw := range industryKeywords {
		if strings.Contains(titleLower, kw) {
			score += 5
		}
		if strings.Contains(excerptLower, kw) {
			score += 2
		}
	}
	for _, w := range noiseWords {
		if strings.Contains(titleLower, w) {
			score -= 12
		}
	}
	return score
}

// rankPages orders pages by descending relevance score and keeps the top
// maxPages. Ties keep their search order.
func rankPages(pages []research.Page, industry string, maxPages int) []research.Page {
	scores := make(map[string]int, len(pages))
	for _, p := range pages {
		scores[p.Title] = scorePage(p.Title, p.Excerpt, industry)
	}
	sort.SliceStable(pages, func(i, j int) bool {
		return scores[pages[i].Title] > scores[pages[j].Title]
	})
	if len(pages) > maxPages {
		pages = pages[:maxPages]
	}
	return pages
}

// snippetText strips the HTML markup of a search snippet down to plain text.
func snippetText(snippet string) string {
	if snippet == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
	if err != nil {
		return snippet
	}
	return strings.TrimSpace(doc.Text())
}
