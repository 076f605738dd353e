package captions

import (
	"testing"

	models "github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
)

func TestTranscriptFromModel(t *testing.T) {
	m := models.Transcript{
		VideoID:      "dQw4w9WgXcQ",
		Language:     "English",
		LanguageCode: "en",
		IsGenerated:  true,
		Lines: []models.TranscriptLine{
			{Text: "Hey there", Start: 0, Duration: 1.54},
			{Text: "how are you", Start: 1.54, Duration: 4.16},
		},
	}

	tr := transcriptFromModel(m)
	if tr.VideoID != m.VideoID {
		t.Errorf("VideoID = %q, want %q", tr.VideoID, m.VideoID)
	}
	if tr.Track.Language != "English" || tr.Track.LanguageCode != "en" || !tr.Track.IsGenerated {
		t.Errorf("Track = %+v, want English/en/generated", tr.Track)
	}
	if len(tr.Snippets) != 2 {
		t.Fatalf("len(Snippets) = %d, want 2", len(tr.Snippets))
	}
	if tr.Snippets[1].Text != "how are you" || tr.Snippets[1].Start != 1.54 || tr.Snippets[1].Duration != 4.16 {
		t.Errorf("Snippets[1] = %+v, want the second caption line", tr.Snippets[1])
	}
}

func TestTranscriptFromModelEmptyLines(t *testing.T) {
	tr := transcriptFromModel(models.Transcript{VideoID: "abc123"})
	if tr.Snippets == nil {
		t.Fatal("Snippets = nil, want empty non-nil slice")
	}
	if len(tr.Snippets) != 0 {
		t.Errorf("len(Snippets) = %d, want 0", len(tr.Snippets))
	}
}
