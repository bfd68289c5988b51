package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/messaging/kafka"
)

// connectKafka поднимает producer для outbox. Без KAFKA_BROKERS возвращает
// nil, nil: события копятся в outbox до появления брокера.
func connectKafka(cfg Config, logger *log.Entry) (*kafka.Producer, error) {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		logger.Info("KAFKA_BROKERS is empty, order events stay in outbox")
		return nil, nil
	}

	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers:  brokers,
		ClientID: cfg.KafkaClientID,
	})
	if err != nil {
		logger.WithError(err).WithField("brokers", brokers).Warn("kafka unavailable, outbox delivery disabled")
		return nil, err
	}
	logger.WithFields(log.Fields{"brokers": brokers, "client_id": cfg.KafkaClientID}).Info("kafka producer ready")
	return producer, nil
}

func closeKafka(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}
	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("kafka producer close")
		return
	}
	logger.Debug("kafka producer closed")
}
