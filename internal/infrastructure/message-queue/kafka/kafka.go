package kafka

import (
	"context"
	"encoding/json"
	"time"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/dto"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Producer publishes domain events to a single Kafka topic. Publication is
// best-effort: failures are logged and never fail the originating request.
type Producer struct {
	conn *kafka.Conn
}

func CreateKafkaProducer(config *config.Config) (*Producer, error) {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, err
	}

	return &Producer{conn: conn}, nil
}

func (p *Producer) Publish(ctx context.Context, eventType string, data interface{}) error {
	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Msg("")
		return err
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = p.conn.WriteMessages(kafka.Message{
			Value: jsonMsg,
		})
		if err == nil {
			break
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("event_type", eventType).Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	return err
}

// NopProducer stands in when no broker is configured.
type NopProducer struct{}

func (NopProducer) Publish(ctx context.Context, eventType string, data interface{}) error {
	return nil
}
