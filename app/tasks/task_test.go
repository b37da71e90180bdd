package tasks

import (
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	task := NewTask(TaskTypeSyndicateFeed, "Partner Wire")

	if task.ID == "" {
		t.Error("Expected non-empty task ID")
	}
	if task.Type != TaskTypeSyndicateFeed {
		t.Errorf("Expected type %q, got %q", TaskTypeSyndicateFeed, task.Type)
	}
	if task.SourceName != "Partner Wire" {
		t.Errorf("Expected source name, got %q", task.SourceName)
	}
	if task.RetryCount != 0 {
		t.Errorf("Expected zero retry count, got %d", task.RetryCount)
	}
	if task.MaxRetries != DefaultMaxRetries {
		t.Errorf("Expected default max retries, got %d", task.MaxRetries)
	}
}

func TestTask_Retries(t *testing.T) {
	task := NewTask(TaskTypePublishScheduled, "scheduled")

	for i := 0; i < DefaultMaxRetries; i++ {
		if !task.CanRetry() {
			t.Fatalf("Expected retry allowed at count %d", task.GetRetryCount())
		}
		task.IncrementRetryCount()
	}

	if task.CanRetry() {
		t.Errorf("Expected no retry after %d attempts", task.GetRetryCount())
	}
}

func TestTask_Duration(t *testing.T) {
	task := NewTask(TaskTypeSyndicateFeed, "x")

	if task.GetDuration() != 0 {
		t.Error("Expected zero duration before start")
	}

	task.Start()
	time.Sleep(time.Millisecond)

	if task.GetDuration() <= 0 {
		t.Error("Expected positive duration after start")
	}
}

func TestNewTask_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		task := NewTask(TaskTypeSyndicateFeed, "x")
		if seen[task.ID] {
			t.Fatalf("Duplicate task ID generated: %s", task.ID)
		}
		seen[task.ID] = true
	}
}
