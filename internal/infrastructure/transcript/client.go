package transcript

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

const defaultBaseURL = "https://www.youtube.com/api/timedtext"

// Client fetches timedtext transcripts over HTTP as a ports.TranscriptSource.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ports.TranscriptSource = (*Client)(nil)

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBase overrides the endpoint, for tests.
func NewClientWithBase(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Texts   []timedTextCue `xml:"text"`
}

type timedTextCue struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Body     string  `xml:",chardata"`
}

func (c *Client) Fetch(ctx context.Context, videoID string, language string) ([]ports.TranscriptSegment, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if strings.TrimSpace(videoID) == "" {
		return nil, errors.New("video id is required")
	}

	query := url.Values{}
	query.Set("v", videoID)
	query.Set("lang", language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "build timedtext request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrapf(err, "fetch transcript for video %q", videoID)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: video %q language %q", ports.ErrNoTranscript, videoID, language)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext returned status %d for video %q", resp.StatusCode, videoID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "read timedtext body")
	}
	// The endpoint answers 200 with an empty body when no track exists.
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("%w: video %q language %q", ports.ErrNoTranscript, videoID, language)
	}

	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, errs.Wrap(err, "decode timedtext xml")
	}

	segments := make([]ports.TranscriptSegment, 0, len(doc.Texts))
	for _, cue := range doc.Texts {
		text := strings.TrimSpace(html.UnescapeString(cue.Body))
		if text == "" {
			continue
		}
		segments = append(segments, ports.TranscriptSegment{
			Start:    cue.Start,
			Duration: cue.Duration,
			Text:     text,
		})
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: video %q language %q", ports.ErrNoTranscript, videoID, language)
	}
	return segments, nil
}
