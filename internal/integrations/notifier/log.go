package notifier

import (
	"context"
	"encoding/json"
)

// LogPublisher пишет события в лог вместо отправки (transport = "log")
type LogPublisher struct {
	logger Logger
}

func NewLogPublisher(logger Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event string, payload interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	p.logger.Info("Notifier: %s %s", event, string(b))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
