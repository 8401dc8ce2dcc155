package research

import "time"

// Page is a single encyclopedia page returned by retrieval, in relevance order.
type Page struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Excerpt string `json:"content_excerpt"`
}

// Report is the generated industry report.
type Report struct {
	Text        string    `json:"text"`
	WordCount   int       `json:"word_count"`
	Model       string    `json:"model,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Result is the outcome of a successful research run: the pages the report
// was grounded in, in the order they were handed to the model.
type Result struct {
	Industry string `json:"industry"`
	Pages    []Page `json:"pages"`
	Report   Report `json:"report"`
	Cached   bool   `json:"cached"`
}
