package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/fitstake/weight-wager-platform/pkg/contracts/events"
)

type KafkaPublisher struct {
	CreatedWriter *kafka.Writer
	SettledWriter *kafka.Writer
}

func NewKafkaPublisher(created, settled *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{CreatedWriter: created, SettledWriter: settled}
}

func (p *KafkaPublisher) PublishWagerCreated(ctx context.Context, e events.WagerCreated) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return p.CreatedWriter.WriteMessages(ctx, kafka.Message{Key: []byte(e.WagerID), Value: b})
}

func (p *KafkaPublisher) PublishWagerSettled(ctx context.Context, e events.WagerSettled) error {
	e.Ts = time.Now()
	b, _ := json.Marshal(e)
	return p.SettledWriter.WriteMessages(ctx, kafka.Message{Key: []byte(e.WagerID), Value: b})
}
