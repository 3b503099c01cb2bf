package messaging

import (
	"context"
	"log/slog"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

var ErrUnknownDriver = errs.New("unknown events driver")

const (
	DriverNone  = "none"
	DriverAMQP  = "amqp"
	DriverKafka = "kafka"
)

// NewPublisher returns the publisher selected by cfg.Driver along with a
// close function.
func NewPublisher(cfg config.EventsConfig) (shared.EventPublisher, func() error, error) {
	switch cfg.Driver {
	case "", DriverNone:
		return NoopPublisher{}, func() error { return nil }, nil
	case DriverAMQP:
		p, err := NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	case DriverKafka:
		p, err := NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		return nil, nil, errs.Wrapf(ErrUnknownDriver, "driver %q", cfg.Driver)
	}
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, event shared.BookingEvent) error {
	slog.Debug("event dropped (no driver)", "type", event.Type, "booking_id", event.BookingID.String())
	return nil
}
