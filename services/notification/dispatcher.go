package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"dentora/config"
	"dentora/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqDispatcher enqueues booking events onto the Redis-backed task queue,
// where the worker in cron/ picks them up.
type AsynqDispatcher struct {
	client *asynq.Client
}

// NewAsynqDispatcher constructs a dispatcher connected to the queue Redis DB.
func NewAsynqDispatcher() *AsynqDispatcher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqDispatcher{client: client}
}

// Close releases the underlying queue connection.
func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}

func (d *AsynqDispatcher) NotifyBookingConfirmed(ctx context.Context, notice BookingNotice) error {
	return d.enqueue(ctx, TypeBookingConfirmed, notice)
}

func (d *AsynqDispatcher) NotifyBookingRescheduled(ctx context.Context, notice BookingNotice) error {
	return d.enqueue(ctx, TypeBookingRescheduled, notice)
}

func (d *AsynqDispatcher) NotifyBookingCancelled(ctx context.Context, notice BookingNotice) error {
	return d.enqueue(ctx, TypeBookingCancelled, notice)
}

func (d *AsynqDispatcher) enqueue(ctx context.Context, taskType string, notice BookingNotice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal %s notice: %w", taskType, err)
	}
	info, err := d.client.EnqueueContext(ctx, asynq.NewTask(taskType, payload))
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}
	utils.GetLogger().Debug("booking event enqueued",
		zap.String("type", taskType),
		zap.String("taskId", info.ID),
		zap.String("appointmentId", notice.AppointmentID))
	return nil
}
