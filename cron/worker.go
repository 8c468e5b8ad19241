package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"dentora/config"
	notificationRepo "dentora/database/repository/notification"
	"dentora/models"
	"dentora/services/notification"
	"dentora/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitBookingEventWorker runs the async worker in background, consuming the
// booking lifecycle events emitted by the scheduling engine and turning them
// into stored notifications for patient and provider.
func InitBookingEventWorker(repo notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingConfirmed, handleBookingEvent(repo, notification.TypeBookingConfirmed))
	mux.HandleFunc(notification.TypeBookingRescheduled, handleBookingEvent(repo, notification.TypeBookingRescheduled))
	mux.HandleFunc(notification.TypeBookingCancelled, handleBookingEvent(repo, notification.TypeBookingCancelled))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingEventWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingEventWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingEventWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingEvent(repo notificationRepo.NotificationRepository, eventType string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var notice notification.BookingNotice
		if err := json.Unmarshal(task.Payload(), &notice); err != nil {
			log.Printf("[BookingEventHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[BookingEventHandler] %s for appointment %s on %s %s",
			eventType, notice.AppointmentID, notice.Date, notice.StartTime)

		for _, n := range composeNotifications(eventType, notice) {
			if err := repo.Insert(&n); err != nil {
				log.Printf("[BookingEventHandler] Failed to store notification: %v", err)
				return err
			}
		}
		return nil
	}
}

// composeNotifications builds the patient and provider messages for one event.
func composeNotifications(eventType string, notice notification.BookingNotice) []models.Notification {
	when := fmt.Sprintf("%s at %s", notice.Date, notice.StartTime)

	var patientTitle, patientMsg, providerTitle, providerMsg string
	switch eventType {
	case notification.TypeBookingConfirmed:
		patientTitle = "Booking Confirmed"
		patientMsg = fmt.Sprintf("Your appointment on %s has been confirmed.", when)
		providerTitle = "New Booking"
		providerMsg = fmt.Sprintf("A new appointment was booked for %s.", when)
	case notification.TypeBookingRescheduled:
		patientTitle = "Appointment Rescheduled"
		patientMsg = fmt.Sprintf("Your appointment has been moved to %s.", when)
		if notice.FeeCharged {
			patientMsg += fmt.Sprintf(" A late-change fee of %d %s was applied.", notice.FeeAmount, notice.FeeCurrency)
		}
		providerTitle = "Appointment Rescheduled"
		providerMsg = fmt.Sprintf("An appointment was moved to %s.", when)
	case notification.TypeBookingCancelled:
		patientTitle = "Appointment Cancelled"
		patientMsg = fmt.Sprintf("Your appointment on %s has been cancelled.", when)
		providerTitle = "Appointment Cancelled"
		providerMsg = fmt.Sprintf("The appointment on %s was cancelled and the slot is free again.", when)
	}

	data := map[string]any{
		"appointmentId": notice.AppointmentID,
		"date":          notice.Date,
		"startTime":     notice.StartTime,
		"endTime":       notice.EndTime,
	}
	if notice.FeeCharged {
		data["feeAmount"] = notice.FeeAmount
		data["feeCurrency"] = notice.FeeCurrency
	}

	now := time.Now()
	return []models.Notification{
		{
			ID:          uuid.New().String(),
			RecipientID: notice.PatientID,
			Role:        "patient",
			Type:        eventType,
			Title:       patientTitle,
			Message:     patientMsg,
			Data:        data,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			RecipientID: notice.ProviderID,
			Role:        "provider",
			Type:        eventType,
			Title:       providerTitle,
			Message:     providerMsg,
			Data:        data,
			CreatedAt:   now,
		},
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			utils.GetLogger().Sugar().Warnf("[BookingEventWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
