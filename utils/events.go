package utils

import (
	"fmt"

	"github.com/getsentry/sentry-go"
)

// LogSnapshotStored is a snapshot_stored subscriber that prints the stored
// record for operators tailing the notifier.
func LogSnapshotStored(data map[string]interface{}) {
	fmt.Printf("snapshot stored: %v\n", data)
}

// AlertOnHiddenCount raises a Sentry message when the stored snapshot has a
// hidden YouTube subscriber count; the channel owner toggling that setting
// is worth a human look.
func AlertOnHiddenCount(data map[string]interface{}) {
	youtube, ok := data["youtube"].(map[string]interface{})
	if !ok {
		return
	}
	if subs, ok := youtube["subscribers"].(string); ok && subs == "hidden" {
		sentry.CaptureMessage("YouTube subscriber count is now hidden")
	}
}
