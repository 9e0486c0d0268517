package main

import (
	"context"
	"innkeep/config"
	"innkeep/infras/kafka"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := kafka.New(cfg)

	log.Info().Str("topic", cfg.Kafka.Topics.BookingEvents).Msg("Starting booking event worker.")

	client.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topics.BookingEvents, handleBookingEvent)
}

func handleBookingEvent(msg kafkaGo.Message) {
	decoded, err := kafka.DecodeKafkaMessage[dto.BookingEvent](msg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to decode booking event.")

		return
	}

	event, ok := decoded.Value.(dto.BookingEvent)
	if !ok {
		log.Error().Msg("Unexpected booking event payload.")

		return
	}

	log.Info().
		Str("event_type", event.EventType).
		Str("booking_id", event.BookingID).
		Str("room_id", event.RoomID).
		Str("status", event.Status).
		Msg("Booking event received.")
}
