package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/phambaophuc/ai-photobooth/internal/models"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// JobHandler renders the display images for one job.
type JobHandler func(ctx context.Context, job *models.DisplayJob) error

// delivery is the part of amqp.Delivery a worker acts on.
type delivery interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type message struct {
	delivery
	body []byte
}

func (q *QueueService) processMessage(ctx context.Context, msg amqp.Delivery, workerID int, handle JobHandler) {
	q.process(ctx, message{delivery: msg, body: msg.Body}, workerID, handle)
}

func (q *QueueService) process(ctx context.Context, msg message, workerID int, handle JobHandler) {
	var job models.DisplayJob
	if err := json.Unmarshal(msg.body, &job); err != nil || job.PhotoID == "" {
		q.logger.Error("Failed to unmarshal job",
			zap.Error(err),
			zap.Int("worker_id", workerID))
		// malformed messages are dropped, not requeued
		if err := msg.Nack(false, false); err != nil {
			q.logger.Error("Failed to nack message",
				zap.Int("worker_id", workerID),
				zap.Error(err))
		}
		return
	}

	q.logger.Info("Processing job",
		zap.String("job_id", job.ID),
		zap.String("photo_id", job.PhotoID),
		zap.Int("worker_id", workerID))

	job.Status = models.StatusProcessing

	if err := runJob(ctx, &job, handle); err != nil {
		job.Status = models.StatusFailed
		job.Error = err.Error()
		q.logger.Error("Job processing failed",
			zap.String("job_id", job.ID),
			zap.Error(err))
	} else {
		job.Status = models.StatusCompleted
		q.logger.Info("Job completed successfully",
			zap.String("job_id", job.ID))
	}

	// failed renders are not retried; the photo keeps its raw images
	if err := msg.Ack(false); err != nil {
		q.logger.Error("Failed to ack message",
			zap.String("job_id", job.ID),
			zap.Error(err))
	}
}

// runJob turns a panic inside handle into an error.
func runJob(ctx context.Context, job *models.DisplayJob, handle JobHandler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing job: %v", r)
		}
	}()
	return handle(ctx, job)
}
