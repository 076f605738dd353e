package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/BryanJamesMedia/youtube-transcript-api/internal/captions"
	"github.com/BryanJamesMedia/youtube-transcript-api/internal/language"
	"github.com/BryanJamesMedia/youtube-transcript-api/internal/subtitle"
	"github.com/BryanJamesMedia/youtube-transcript-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handler serves the transcript API endpoints.
type Handler struct {
	provider captions.Provider
}

// NewHandler creates a Handler backed by the given caption provider.
func NewHandler(provider captions.Provider) *Handler {
	return &Handler{provider: provider}
}

// RegisterRoutes attaches all API routes to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", healthCheck)
	r.GET("/transcript", h.getTranscript)
	r.GET("/transcript/languages", h.listLanguages)
}

// healthCheck returns server health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// transcriptQuery carries the query parameters of GET /transcript. The
// format enum is enforced at the binding layer; an absent format falls back
// to json before validation runs.
type transcriptQuery struct {
	VideoID            string `form:"videoId"`
	Lang               string `form:"lang"`
	Format             string `form:"format,default=json" binding:"oneof=json srt vtt txt"`
	PreserveFormatting bool   `form:"preserveFormatting"`
}

// getTranscript fetches a video transcript and renders it in the requested
// output format.
func (h *Handler) getTranscript(c *gin.Context) {
	var q transcriptQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if q.VideoID == "" {
		utils.Error(c, http.StatusBadRequest, "Missing required query parameter 'videoId'.")
		return
	}

	languages := language.Parse(q.Lang)
	if len(languages) == 0 {
		// A lang value like ", ," dissolves entirely; treat it as absent.
		languages = []string{language.DefaultLanguage}
	}

	transcript, err := h.provider.FetchTranscript(c.Request.Context(), q.VideoID, languages, q.PreserveFormatting)
	if err != nil {
		respondError(c, err)
		return
	}

	snippets := transcript.Snippets
	if snippets == nil {
		snippets = []captions.Snippet{}
	}

	switch q.Format {
	case "txt":
		c.String(http.StatusOK, subtitle.FormatText(snippets))
	case "srt":
		c.String(http.StatusOK, subtitle.FormatSRT(snippets))
	case "vtt":
		c.String(http.StatusOK, subtitle.FormatVTT(snippets))
	default:
		c.JSON(http.StatusOK, snippets)
	}
}

// listLanguages returns the caption tracks available for a video, so callers
// can discover which lang values will succeed before requesting a transcript.
func (h *Handler) listLanguages(c *gin.Context) {
	videoID := c.Query("videoId")
	if videoID == "" {
		utils.Error(c, http.StatusBadRequest, "Missing required query parameter 'videoId'.")
		return
	}

	tracks, err := h.provider.ListTracks(c.Request.Context(), videoID)
	if err != nil {
		respondError(c, err)
		return
	}
	if tracks == nil {
		tracks = []captions.Track{}
	}
	c.JSON(http.StatusOK, tracks)
}

// kindStatus maps caption error kinds to HTTP status codes. Every failure
// the provider can classify is reported as 404 except an upstream transport
// failure.
var kindStatus = map[captions.Kind]int{
	captions.KindNotFound:        http.StatusNotFound,
	captions.KindDisabled:        http.StatusNotFound,
	captions.KindUnavailable:     http.StatusNotFound,
	captions.KindBlocked:         http.StatusNotFound,
	captions.KindAgeRestricted:   http.StatusNotFound,
	captions.KindInvalidID:       http.StatusNotFound,
	captions.KindTokenRequired:   http.StatusNotFound,
	captions.KindUnknown:         http.StatusNotFound,
	captions.KindUpstreamFailure: http.StatusBadGateway,
}

// respondError translates provider failures into API error responses. The
// message of a classified error is passed through to the client; anything
// outside the captions taxonomy gets a fixed generic 500.
func respondError(c *gin.Context, err error) {
	var cerr *captions.Error
	if errors.As(err, &cerr) {
		status, ok := kindStatus[cerr.Kind]
		if !ok {
			status = http.StatusNotFound
		}
		log.Printf("[Transcript] provider error (kind=%s, status=%d): %v", cerr.Kind, status, err)
		utils.Error(c, status, cerr.Message)
		return
	}
	log.Printf("[Transcript] unexpected error: %v", err)
	utils.Error(c, http.StatusInternalServerError, "Internal Server Error")
}
