package queue

import (
	"testing"
	"time"
)

func TestTaskQueueProcessing(t *testing.T) {
	// Replace global queue for test
	TaskQueue = make(chan func(), 1)
	done := make(chan struct{})

	StartWorker()
	TaskQueue <- func() { close(done) }

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("expected task to be processed")
	}
}
