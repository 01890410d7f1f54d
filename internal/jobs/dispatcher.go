// Package jobs contains the background work triggered by webhook events: the
// per-pull-request review pass and the conversational thread reply.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sevigo/review-crew/internal/core"
)

// dispatcher implements core.JobDispatcher with a bounded queue and a pool of
// worker goroutines. Each event is processed sequentially inside one worker;
// the pool size only bounds how many events are in flight at once.
type dispatcher struct {
	reviewJob  core.Job
	replyJob   core.Job
	jobQueue   chan *core.GitHubEvent
	maxWorkers int
	wg         sync.WaitGroup
	logger     *slog.Logger
}

// NewDispatcher initializes a dispatcher with a worker pool. If maxWorkers is
// 0 or negative, it defaults to 1.
func NewDispatcher(reviewJob *ReviewJob, replyJob *ReplyJob, maxWorkers int, logger *slog.Logger) core.JobDispatcher {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	d := &dispatcher{
		reviewJob:  reviewJob,
		replyJob:   replyJob,
		maxWorkers: maxWorkers,
		jobQueue:   make(chan *core.GitHubEvent, 100),
		logger:     logger,
	}
	d.startWorkers()
	return d
}

func (d *dispatcher) startWorkers() {
	for i := range d.maxWorkers {
		d.wg.Add(1)
		go d.startWorker(i)
	}
}

func (d *dispatcher) startWorker(workerID int) {
	defer d.wg.Done()
	d.logger.Info("starting worker", "id", workerID)

	for event := range d.jobQueue {
		d.processEvent(workerID, event)
	}

	d.logger.Info("shutting down worker", "id", workerID)
}

// processEvent routes an event to the job matching its kind. Job errors are
// logged and swallowed here: the webhook delivery was already acknowledged,
// so there is no caller left to surface them to.
func (d *dispatcher) processEvent(workerID int, event *core.GitHubEvent) {
	d.logger.Info("worker processing event",
		"worker_id", workerID,
		"kind", event.Kind,
		"repo", event.RepoFullName,
		"pr", event.PRNumber,
	)

	var err error
	switch event.Kind {
	case core.EventPullRequest:
		err = d.reviewJob.Run(context.Background(), event)
	case core.EventCommentReply:
		err = d.replyJob.Run(context.Background(), event)
	default:
		d.logger.Warn("dropping event of unknown kind", "kind", event.Kind)
		return
	}
	if err != nil {
		d.logger.Error("job failed",
			"kind", event.Kind,
			"repo", event.RepoFullName,
			"pr", event.PRNumber,
			"error", err,
		)
	}
}

// Dispatch queues an event for processing by a worker.
func (d *dispatcher) Dispatch(_ context.Context, event *core.GitHubEvent) error {
	d.logger.Info("queuing job", "kind", event.Kind, "repo", event.RepoFullName, "pr", event.PRNumber)

	select {
	case d.jobQueue <- event:
		return nil
	default:
		return fmt.Errorf("job queue is full, cannot accept new job")
	}
}

// Stop gracefully shuts down the dispatcher, waiting for queued jobs to
// finish.
func (d *dispatcher) Stop() {
	d.logger.Info("stopping dispatcher and waiting for jobs to finish")
	close(d.jobQueue)
	d.wg.Wait()
	d.logger.Info("all jobs have finished")
}
