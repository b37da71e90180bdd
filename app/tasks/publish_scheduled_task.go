package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/voxummah/newsdesk/app/database"
)

// PublishScheduledTask flips articles whose scheduled publish time has passed
// into the published state.
type PublishScheduledTask struct {
	Task
	articleRepo database.ArticleRepository
}

func NewPublishScheduledTask(articleRepo database.ArticleRepository) *PublishScheduledTask {
	return &PublishScheduledTask{
		Task:        NewTask(TaskTypePublishScheduled, "scheduled"),
		articleRepo: articleRepo,
	}
}

func (t *PublishScheduledTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	published, err := t.articleRepo.PublishScheduled(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to publish scheduled articles: %w", err)
	}

	if published > 0 {
		slog.Info("Task completed",
			"type", "PublishScheduled",
			"duration", t.GetDuration(),
			"published", published)
	}

	return nil
}
