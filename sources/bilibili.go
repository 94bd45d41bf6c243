package sources

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"follower-tracker/models"
)

// BilibiliSource fetches the follower count from Bilibili's public
// relation/stat API. The endpoint rejects requests that don't look like a
// browser, so the spoofed headers matter.
type BilibiliSource struct {
	BaseURL string
	Client  *http.Client
}

func NewBilibiliSource(baseURL string) *BilibiliSource {
	return &BilibiliSource{
		BaseURL: baseURL,
		Client:  newHTTPClient(),
	}
}

type bilibiliResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Follower *int64 `json:"follower"`
	} `json:"data"`
}

// FetchCount returns the follower count for the given user id, or a null
// count on any network error, non-success status, or unparsable body.
func (s *BilibiliSource) FetchCount(userID string) models.Count {
	url := fmt.Sprintf("%s/x/relation/stat?vmid=%s", s.BaseURL, userID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		log.Printf("Error building Bilibili request: %v", err)
		return models.NullCount()
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Origin", "https://space.bilibili.com")
	req.Header.Set("Referer", fmt.Sprintf("https://space.bilibili.com/%s/", userID))

	resp, err := s.Client.Do(req)
	if err != nil {
		log.Printf("Error fetching Bilibili data: %v", err)
		return models.NullCount()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Bilibili API returned status %d", resp.StatusCode)
		return models.NullCount()
	}

	var body bilibiliResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("Error decoding Bilibili JSON response: %v", err)
		return models.NullCount()
	}
	if body.Code != 0 {
		log.Printf("Bilibili API error: %s", body.Message)
		return models.NullCount()
	}
	if body.Data.Follower == nil {
		log.Printf("Bilibili response missing follower field")
		return models.NullCount()
	}
	return models.CountOf(*body.Data.Follower)
}
