package captions

import "context"

// Provider defines the interface for caption providers
type Provider interface {
	// ListTracks returns the caption tracks available for a video
	ListTracks(ctx context.Context, videoID string) ([]Track, error)

	// FetchTranscript retrieves the transcript of the best track for the
	// ordered language preference list. When preserveFormatting is set,
	// inline caption markup is kept in the snippet text.
	FetchTranscript(ctx context.Context, videoID string, languages []string, preserveFormatting bool) (*Transcript, error)

	// Name returns the name of the provider (e.g., "youtube")
	Name() string
}
