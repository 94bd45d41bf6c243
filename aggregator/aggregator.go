package aggregator

import (
	"time"

	"follower-tracker/config"
	"follower-tracker/models"
	"follower-tracker/sources"
)

// timestampLayout matches Python's datetime.utcnow().isoformat() + "Z",
// which is what consumers of the stored document already parse.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Aggregator collects counts from both platforms into one Snapshot.
type Aggregator struct {
	Bilibili sources.CountSource
	YouTube  sources.CountSource
}

// New builds an aggregator with real platform adapters from cfg.
func New(cfg config.Config) *Aggregator {
	return &Aggregator{
		Bilibili: sources.NewBilibiliSource(cfg.BilibiliAPIURL),
		YouTube:  sources.NewYouTubeSource(cfg.YouTubeAPIURL, cfg.YouTubeAPIKey),
	}
}

// Collect invokes both adapters and stamps the result. A failed adapter
// contributes a null count; it never prevents the other adapter from running
// or the snapshot from being built. The timestamp is captured once, after
// both adapters complete.
func (a *Aggregator) Collect() models.Snapshot {
	followers := a.Bilibili.FetchCount(config.BilibiliUserID)
	subscribers := a.YouTube.FetchCount(config.YouTubeChannelID)

	return models.Snapshot{
		Bilibili: models.BilibiliStats{
			UserID:    config.BilibiliUserID,
			Followers: followers,
		},
		YouTube: models.YouTubeStats{
			ChannelID:   config.YouTubeChannelID,
			Subscribers: subscribers,
		},
		LastUpdatedUTC: time.Now().UTC().Format(timestampLayout),
	}
}
