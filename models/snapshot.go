package models

import (
	"encoding/json"
	"fmt"
)

// hiddenSentinel is stored when a platform deliberately withholds its count.
const hiddenSentinel = "hidden"

// Count is a follower/subscriber total. It serializes as a plain number,
// as null when the platform could not be reached or returned garbage, and
// as the string "hidden" when the platform withholds the count on purpose.
type Count struct {
	Value  int64
	Valid  bool
	Hidden bool
}

// CountOf returns a Count holding a real number.
func CountOf(n int64) Count {
	return Count{Value: n, Valid: true}
}

// HiddenCount returns the hidden sentinel.
func HiddenCount() Count {
	return Count{Hidden: true}
}

// NullCount marks the count as unavailable.
func NullCount() Count {
	return Count{}
}

func (c Count) MarshalJSON() ([]byte, error) {
	if c.Hidden {
		return json.Marshal(hiddenSentinel)
	}
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

func (c *Count) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Count{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != hiddenSentinel {
			return fmt.Errorf("unexpected count value %q", s)
		}
		*c = Count{Hidden: true}
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Count{Value: n, Valid: true}
	return nil
}

// BilibiliStats is the normalized follower record for the Bilibili account.
type BilibiliStats struct {
	UserID    string `json:"user_id"`
	Followers Count  `json:"followers"`
}

// YouTubeStats is the normalized subscriber record for the YouTube channel.
type YouTubeStats struct {
	ChannelID   string `json:"channel_id"`
	Subscribers Count  `json:"subscribers"`
}

// Snapshot is the single aggregated record written to the KV store.
// LastUpdatedUTC is declared last so it serializes as the final field.
type Snapshot struct {
	Bilibili       BilibiliStats `json:"bilibili"`
	YouTube        YouTubeStats  `json:"youtube"`
	LastUpdatedUTC string        `json:"last_updated_utc"`
}
