package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// attendanceLifecycleEvent is the envelope shared by the attendance topic
// payloads; only the fields needed for cache eviction are decoded.
type attendanceLifecycleEvent struct {
	EventType string `json:"event_type"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
}

// ConsumeAttendanceLifecycle evicts the cached monthly statistics of a staff
// member whenever one of their attendance days closes, so the admin view
// never serves a stale month.
func ConsumeAttendanceLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_lifecycle")
	log.Info("attendance lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance lifecycle consumer stopped")
				return
			}
			log.Error("fetch attendance lifecycle message failed", zap.Error(err))
			continue
		}

		var event attendanceLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.UserID == "" || len(event.Date) < 7 {
			log.Warn("attendance lifecycle event missing user or date, skipping",
				zap.String("event_type", event.EventType),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		cacheKey := fmt.Sprintf("staff:attendance:%s:%s", event.UserID, event.Date[:7])
		if err := rdb.Del(ctx, cacheKey).Err(); err != nil {
			log.Error("evict monthly statistics cache failed",
				zap.String("cache_key", cacheKey),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("monthly statistics cache evicted",
			zap.String("event_type", event.EventType),
			zap.String("user_id", event.UserID),
			zap.String("month", event.Date[:7]),
		)
	}
}
