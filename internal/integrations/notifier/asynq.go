package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// AsynqOptions параметры постановки задач в очередь
type AsynqOptions struct {
	Queue    string
	MaxRetry int
	Timeout  time.Duration
}

// AsynqPublisher ставит события в очередь asynq (redis).
// Задача с типом события повторяется воркером уведомлений до MaxRetry раз
type AsynqPublisher struct {
	client *asynq.Client
	opts   AsynqOptions
}

// NewAsynqPublisher создает publisher поверх redis
func NewAsynqPublisher(redisAddr, redisPassword string, redisDB int, opts AsynqOptions) *AsynqPublisher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
	return &AsynqPublisher{client: client, opts: opts}
}

// Publish ставит задачу event с JSON-payload
func (p *AsynqPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	task, opts, err := NewTask(event, payload, p.opts)
	if err != nil {
		return err
	}

	if _, err := p.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue %s: %w", event, err)
	}
	return nil
}

func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}

// NewTask собирает задачу asynq для события
func NewTask(event string, payload interface{}, o AsynqOptions) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal %s payload: %w", event, err)
	}

	task := asynq.NewTask(event, b)

	opts := make([]asynq.Option, 0, 3)
	if o.Queue != "" {
		opts = append(opts, asynq.Queue(o.Queue))
	}
	if o.MaxRetry > 0 {
		opts = append(opts, asynq.MaxRetry(o.MaxRetry))
	}
	if o.Timeout > 0 {
		opts = append(opts, asynq.Timeout(o.Timeout))
	}

	return task, opts, nil
}
