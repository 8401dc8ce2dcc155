package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MargotLh/market-research-assistant/internal/research"
)

const (
	// DefaultMaxPages is how many pages a research run is grounded in.
	DefaultMaxPages = 5

	// perQueryLimit caps hits per candidate query; candidatePoolSize caps
	// the deduplicated pool so extracts fit in one TextExtracts request
	// (the API serves at most 20 intro extracts per call).
	perQueryLimit     = 10
	candidatePoolSize = 20
)

// Client handles MediaWiki search API operations.
type Client struct {
	lang       string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Wikipedia client for the given language edition.
func NewClient(lang string) *Client {
	if lang == "" {
		lang = "en"
	}
	return &Client{
		lang:    lang,
		baseURL: fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(5), 1),
	}
}

// searchHit is one result from list=search.
type searchHit struct {
	pageID  int
	title   string
	snippet string
}

// Search returns up to maxPages pages relevant to the industry, most
// relevant first. It expands the industry into several candidate queries,
// deduplicates hits by title, loads plain-text intro extracts, and reranks
// the pool by an industry-relevance score.
func (c *Client) Search(ctx context.Context, industry string, maxPages int) ([]research.Page, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	// Collect unique candidates by title across all queries. Individual
	// query failures are tolerated as long as something comes back.
	var (
		hits    []searchHit
		seen    = make(map[string]bool)
		lastErr error
	)
	for _, query := range candidateQueries(industry) {
		result, err := c.searchCandidates(ctx, query, perQueryLimit)
		if err != nil {
			lastErr = err
			continue
		}
		for _, hit := range result {
			if hit.title == "" || seen[hit.title] {
				continue
			}
			seen[hit.title] = true
			hits = append(hits, hit)
			if len(hits) >= candidatePoolSize {
				break
			}
		}
		if len(hits) >= candidatePoolSize {
			break
		}
	}

	if len(hits) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("searching Wikipedia: %w", lastErr)
		}
		return nil, nil
	}

	pageIDs := make([]int, 0, len(hits))
	for _, hit := range hits {
		pageIDs = append(pageIDs, hit.pageID)
	}

	extracts, err := c.fetchExtracts(ctx, pageIDs)
	if err != nil {
		return nil, fmt.Errorf("loading page extracts: %w", err)
	}

	pages := make([]research.Page, 0, len(hits))
	for _, hit := range hits {
		page := research.Page{
			Title: hit.title,
			URL:   c.pageURL(hit.title),
		}
		if ext, ok := extracts[hit.pageID]; ok {
			page.Excerpt = ext.extract
			if ext.fullURL != "" {
				page.URL = ext.fullURL
			}
		}
		if page.Excerpt == "" {
			// Some pages have no TextExtracts intro; the search snippet
			// (HTML) is the next best source of content.
			page.Excerpt = snippetText(hit.snippet)
		}
		pages = append(pages, page)
	}

	return rankPages(pages, industry, maxPages), nil
}

// candidateQueries expands an industry name into the query variants used to
// build the candidate pool.
func candidateQueries(industry string) []string {
	return []string{
		industry + " industry",
		industry + " market",
		industry + " sector",
		industry,
	}
}

// searchCandidates runs one list=search call.
func (c *Client) searchCandidates(ctx context.Context, query string, limit int) ([]searchHit, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", "snippet")

	body, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Error *apiError `json:"error"`
		Query struct {
			Search []struct {
				PageID  int    `json:"pageid"`
				Title   string `json:"title"`
				Snippet string `json:"snippet"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	hits := make([]searchHit, 0, len(result.Query.Search))
	for _, s := range result.Query.Search {
		hits = append(hits, searchHit{pageID: s.PageID, title: s.Title, snippet: s.Snippet})
	}
	return hits, nil
}

// pageExtract is the per-page payload from prop=extracts|info.
type pageExtract struct {
	extract string
	fullURL string
}

// fetchExtracts loads plain-text intro extracts and canonical URLs for the
// given pages in a single batch call.
func (c *Client) fetchExtracts(ctx context.Context, pageIDs []int) (map[int]pageExtract, error) {
	ids := make([]string, 0, len(pageIDs))
	for _, id := range pageIDs {
		ids = append(ids, strconv.Itoa(id))
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("pageids", strings.Join(ids, "|"))
	params.Set("prop", "extracts|info")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("exlimit", "max")
	params.Set("inprop", "url")

	body, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Error *apiError `json:"error"`
		Query struct {
			Pages []struct {
				PageID  int    `json:"pageid"`
				Title   string `json:"title"`
				Extract string `json:"extract"`
				FullURL string `json:"fullurl"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding extracts response: %w", err)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	extracts := make(map[int]pageExtract, len(result.Query.Pages))
	for _, p := range result.Query.Pages {
		extracts[p.PageID] = pageExtract{
			extract: strings.TrimSpace(p.Extract),
			fullURL: p.FullURL,
		}
	}
	return extracts, nil
}

// call performs one rate-limited GET against the Action API.
func (c *Client) call(ctx context.Context, params url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", "Market Research Assistant Bot/1.0 (Wikipedia)")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Wikipedia API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Wikipedia API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// pageURL builds the canonical article URL for a title, used when the API
// response carries no fullurl.
func (c *Client) pageURL(title string) string {
	return fmt.Sprintf("https://%s.wikipedia.org/wiki/%s",
		c.lang, url.PathEscape(strings.ReplaceAll(title, " ", "_")))
}

// apiError is the error envelope of the Action API.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("Wikipedia API error %s: %s", e.Code, e.Info)
}
