package captions

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	models "github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
)

// YouTubeProvider implements Provider using the youtube-transcript-api-go client.
type YouTubeProvider struct {
	client *yt_transcript.YtTranscriptClient
}

// NewYouTubeProvider creates a new YouTube caption provider. A non-nil
// proxyURL routes all caption traffic through that proxy; nil uses a direct
// connection.
func NewYouTubeProvider(proxyURL *url.URL) *YouTubeProvider {
	var httpClient *http.Client
	if proxyURL != nil {
		httpClient = &http.Client{
			Transport: &http.Transport{Proxy: http.ProxyURL(proxyURL)},
			Timeout:   90 * time.Second,
		}
	}
	return &YouTubeProvider{client: yt_transcript.NewClient(httpClient)}
}

// Name returns the provider name
func (p *YouTubeProvider) Name() string {
	return "youtube"
}

// ListTracks returns the caption tracks available for a video. A nil language
// filter asks the client for every track.
func (p *YouTubeProvider) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	transcripts, err := p.getTranscripts(ctx, videoID, nil, false)
	if err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(transcripts))
	for _, tr := range transcripts {
		tracks = append(tracks, trackFromModel(tr))
	}
	log.Printf("[YouTube] listed %d caption tracks for video %s", len(tracks), videoID)
	return tracks, nil
}

// FetchTranscript retrieves the transcript of the best track for the ordered
// language preference list.
func (p *YouTubeProvider) FetchTranscript(ctx context.Context, videoID string, languages []string, preserveFormatting bool) (*Transcript, error) {
	startTime := time.Now()

	transcripts, err := p.getTranscripts(ctx, videoID, languages, preserveFormatting)
	if err != nil {
		return nil, err
	}
	if len(transcripts) == 0 {
		return nil, NewError(KindNotFound, "no transcript found for video %s with language codes %v", videoID, languages)
	}

	tracks := make([]Track, len(transcripts))
	for i, tr := range transcripts {
		tracks[i] = trackFromModel(tr)
	}
	idx, err := SelectTrack(tracks, languages)
	if err != nil {
		// The client already applied its own language filtering; keep its
		// first pick.
		idx = 0
	}

	transcript := transcriptFromModel(transcripts[idx])
	log.Printf("[YouTube] fetched transcript: video=%s language=%s generated=%t snippets=%d duration=%v",
		videoID, transcript.Track.LanguageCode, transcript.Track.IsGenerated,
		len(transcript.Snippets), time.Since(startTime))
	return transcript, nil
}

// getTranscripts runs the client call in a goroutine raced against ctx. The
// client has no context support, so on cancellation the goroutine is
// abandoned; the buffered channel lets it finish without leaking.
func (p *YouTubeProvider) getTranscripts(ctx context.Context, videoID string, languages []string, preserveFormatting bool) ([]models.Transcript, error) {
	type result struct {
		transcripts []models.Transcript
		err         error
	}

	resultCh := make(chan result, 1)
	go func() {
		transcripts, err := p.client.GetTranscripts(videoID, languages, preserveFormatting)
		resultCh <- result{transcripts, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultCh:
		if res.err != nil {
			return nil, ClassifyError(res.err)
		}
		return res.transcripts, nil
	}
}

func trackFromModel(m models.Transcript) Track {
	return Track{
		Language:     m.Language,
		LanguageCode: m.LanguageCode,
		IsGenerated:  m.IsGenerated,
	}
}

func transcriptFromModel(m models.Transcript) *Transcript {
	snippets := make([]Snippet, 0, len(m.Lines))
	for _, line := range m.Lines {
		snippets = append(snippets, Snippet{
			Text:     line.Text,
			Start:    line.Start,
			Duration: line.Duration,
		})
	}
	return &Transcript{
		VideoID:  m.VideoID,
		Track:    trackFromModel(m),
		Snippets: snippets,
	}
}
