package tasks

// TaskSchedulerInterface defines the interface for background task scheduling.
// Used by the main application to manage the worker pool and by API handlers
// to enqueue on-demand work.
// Example usage:
//
//	scheduler := NewScheduler(articleRepo, httpClient, parser, extractor, sources)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewSyndicateFeedTask(...))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
