package captions

// Snippet is one caption line positioned on the video timeline.
// Start and Duration are in seconds.
type Snippet struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Track describes one caption stream available for a video. A video can carry
// manually created and auto-generated tracks in several languages at once.
type Track struct {
	Language     string `json:"language"`
	LanguageCode string `json:"languageCode"`
	IsGenerated  bool   `json:"isGenerated"`
}

// Transcript is a fetched caption track with its snippets in timeline order.
type Transcript struct {
	VideoID  string
	Track    Track
	Snippets []Snippet
}
