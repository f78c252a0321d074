package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// MusicBrainzBaseURL is the MusicBrainz web service endpoint.
	MusicBrainzBaseURL = "https://musicbrainz.org/ws/2"

	userAgent = "MuzikosMokykla/1.0 (https://muzikos-mokykla.example)"
)

// Artist is the trimmed-down artist shape returned to the widget.
type Artist struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Country        string `json:"country"`
	Disambiguation string `json:"disambiguation,omitempty"`
}

// MusicBrainzClient is an HTTP client for the MusicBrainz search API.
// MusicBrainz allows one request per second per client, enforced here
// with a limiter rather than left to chance.
type MusicBrainzClient struct {
	BaseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewMusicBrainzClient() *MusicBrainzClient {
	return &MusicBrainzClient{
		BaseURL: MusicBrainzBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// SearchArtistsByTag searches artists carrying the given tag (e.g. "piano").
func (c *MusicBrainzClient) SearchArtistsByTag(ctx context.Context, tag string, limit int) ([]Artist, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", "tag:"+tag)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fmt", "json")

	fullURL := fmt.Sprintf("%s/artist/?%s", c.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("musicbrainz request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("musicbrainz: status %d", resp.StatusCode)
	}

	var payload struct {
		Artists []struct {
			ID             string `json:"id"`
			Name           string `json:"name"`
			Type           string `json:"type"`
			Country        string `json:"country"`
			Disambiguation string `json:"disambiguation"`
		} `json:"artists"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	artists := make([]Artist, 0, len(payload.Artists))
	for _, a := range payload.Artists {
		artist := Artist{
			ID:             a.ID,
			Name:           a.Name,
			Type:           a.Type,
			Country:        a.Country,
			Disambiguation: a.Disambiguation,
		}
		if artist.Type == "" {
			artist.Type = "Person"
		}
		if artist.Country == "" {
			artist.Country = "Unknown"
		}
		artists = append(artists, artist)
	}
	return artists, nil
}
