package works

// IndexEntry is one row of /works-index.json. DatePublished encodes as
// null for undated works.
type IndexEntry struct {
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	DatePublished *string `json:"datePublished"`
}
