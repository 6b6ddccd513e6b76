package overpass

import (
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/context"
)

type Client struct {
	http    *resty.Client
	baseURL string
}

func NewClient(client *resty.Client, baseURL string) *Client {
	return &Client{
		http:    client,
		baseURL: baseURL,
	}
}

// QueryBasketballCourts asks Overpass for basketball-tagged elements within
// radiusMeters of the given position. The query requests "out center" so that
// ways and relations come back with a usable coordinate.
func (c *Client) QueryBasketballCourts(ctx context.Context, lat, lon float64, radiusMeters int) ([]Element, error) {
	query := fmt.Sprintf(
		"[out:json][timeout:30];(nwr[sport=basketball](around:%d,%f,%f);nwr[leisure=pitch][sport=basketball](around:%d,%f,%f););out center;",
		radiusMeters, lat, lon,
		radiusMeters, lat, lon,
	)

	result := &Response{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("data", query).
		SetResult(result).
		Get(c.baseURL)
	if err != nil {
		slog.With("error", err.Error()).Error("Error querying overpass")
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode())
	}
	return result.Elements, nil
}
