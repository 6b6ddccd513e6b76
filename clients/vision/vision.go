package vision

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/context"
)

const annotateURL = "https://vision.googleapis.com/v1/images:annotate"

type Client struct {
	http   *resty.Client
	apiKey string
	url    string
}

func NewClient(client *resty.Client, apiKey string) *Client {
	return &Client{
		http:   client,
		apiKey: apiKey,
		url:    annotateURL,
	}
}

type Label struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

type TextAnnotation struct {
	Locale      string `json:"locale,omitempty"`
	Description string `json:"description"`
}

// Analysis is the subset of an images:annotate response this service acts on.
type Analysis struct {
	Labels          []Label
	TextAnnotations []TextAnnotation
	FullText        string
}

type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type annotateEntry struct {
	Image    imageContent `json:"image"`
	Features []feature    `json:"features"`
}

type imageContent struct {
	Content string `json:"content"`
}

type feature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults,omitempty"`
}

type annotateResponse struct {
	Responses []struct {
		LabelAnnotations   []Label          `json:"labelAnnotations"`
		TextAnnotations    []TextAnnotation `json:"textAnnotations"`
		FullTextAnnotation *struct {
			Text string `json:"text"`
		} `json:"fullTextAnnotation"`
	} `json:"responses"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// AnnotateImage runs label and text detection over a base64-encoded image.
func (c *Client) AnnotateImage(ctx context.Context, base64Content string) (*Analysis, error) {
	body := annotateRequest{
		Requests: []annotateEntry{
			{
				Image: imageContent{Content: base64Content},
				Features: []feature{
					{Type: "LABEL_DETECTION", MaxResults: 15},
					{Type: "TEXT_DETECTION"},
				},
			},
		},
	}

	result := &annotateResponse{}
	responseError := &apiError{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(result).
		SetError(responseError).
		Post(c.url)
	if err != nil {
		slog.With("error", err.Error()).Error("Error calling vision API")
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("vision API error: %s", responseError.Error.Message)
	}
	if len(result.Responses) == 0 {
		return nil, fmt.Errorf("vision API returned no responses")
	}

	r := result.Responses[0]
	analysis := &Analysis{
		Labels:          r.LabelAnnotations,
		TextAnnotations: r.TextAnnotations,
	}
	if r.FullTextAnnotation != nil {
		analysis.FullText = r.FullTextAnnotation.Text
	}
	return analysis, nil
}

var courtLabelPattern = regexp.MustCompile(`(?i)park|playground|recreation|outdoor|field|court`)

const courtLabelMinScore = 0.75

// LooksLikeCourt reports whether any detected label strongly suggests the
// photo was taken at a park or court.
func (a *Analysis) LooksLikeCourt() bool {
	for _, label := range a.Labels {
		if courtLabelPattern.MatchString(label.Description) && label.Score > courtLabelMinScore {
			return true
		}
	}
	return false
}
