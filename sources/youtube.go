package sources

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"follower-tracker/models"
)

// YouTubeSource fetches the subscriber count for a channel through the
// YouTube Data API v3 channels endpoint, "statistics" part.
type YouTubeSource struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewYouTubeSource(baseURL, apiKey string) *YouTubeSource {
	return &YouTubeSource{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  newHTTPClient(),
	}
}

type youtubeChannelList struct {
	Items []struct {
		Statistics struct {
			// The API serializes subscriberCount as a quoted string.
			SubscriberCount       string `json:"subscriberCount"`
			HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// FetchCount returns the subscriber count for the given channel id. Without
// an API key it fails immediately, before any network I/O. A channel that
// hides its subscriber count yields the hidden sentinel; a missing channel
// or malformed response yields null.
func (s *YouTubeSource) FetchCount(channelID string) models.Count {
	if s.APIKey == "" {
		log.Printf("YouTube API Key not configured. Please set the YOUTUBE_API_KEY environment variable.")
		return models.NullCount()
	}

	q := url.Values{}
	q.Set("part", "statistics")
	q.Set("id", channelID)
	q.Set("key", s.APIKey)
	endpoint := fmt.Sprintf("%s/channels?%s", s.BaseURL, q.Encode())

	resp, err := s.Client.Get(endpoint)
	if err != nil {
		log.Printf("Error fetching YouTube data: %v", err)
		return models.NullCount()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("YouTube API returned status %d", resp.StatusCode)
		return models.NullCount()
	}

	var body youtubeChannelList
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("Error decoding YouTube JSON response: %v", err)
		return models.NullCount()
	}
	if len(body.Items) == 0 {
		log.Printf("YouTube channel not found or API error.")
		return models.NullCount()
	}

	stats := body.Items[0].Statistics
	if stats.HiddenSubscriberCount {
		return models.HiddenCount()
	}
	n, err := strconv.ParseInt(stats.SubscriberCount, 10, 64)
	if err != nil {
		log.Printf("Error parsing YouTube subscriberCount %q: %v", stats.SubscriberCount, err)
		return models.NullCount()
	}
	return models.CountOf(n)
}
