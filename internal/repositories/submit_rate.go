package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/contact-form/internal/logger"
)

// SubmitRateRepository counts submissions per client in fixed windows stored in Redis.
type SubmitRateRepository struct {
	client *redis.Client
	window time.Duration
}

// NewSubmitRateRepository creates a counter whose keys expire after window.
func NewSubmitRateRepository(client *redis.Client, window time.Duration) *SubmitRateRepository {
	return &SubmitRateRepository{
		client: client,
		window: window,
	}
}

// Hit records one submission for client and returns the count in the current window.
// The window starts at the first hit; later hits do not extend it.
func (r *SubmitRateRepository) Hit(ctx context.Context, client string) (int64, error) {
	key := fmt.Sprintf("submit_rate:%s", client)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, r.window)
	_, err := pipe.Exec(ctx)

	logger.Log.Infow(
		"redis",
		"key", key,
		"result", incr.Val(),
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
