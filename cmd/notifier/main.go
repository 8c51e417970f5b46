package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pidsadka/pidsadka/internal/pkg/config"
	"github.com/pidsadka/pidsadka/internal/pkg/constants"
	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/nsq"
	"github.com/pidsadka/pidsadka/services/notifier"
)

const channel = "notifier"

func main() {
	appName := "notifier"
	configPath := "config/notifier.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	logger.Info("Starting application", logger.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	})

	dispatcher := notifier.NewDispatcher()

	subscriptions := map[string]nsq.MessageHandler{
		constants.TopicBookingCreated:   dispatcher.HandleBookingCreated,
		constants.TopicBookingCancelled: dispatcher.HandleBookingCancelled,
		constants.TopicTripCancelled:    dispatcher.HandleTripCancelled,
		constants.TopicTripFinished:     dispatcher.HandleTripFinished,
		constants.TopicReminderDue:      dispatcher.HandleReminderDue,
	}

	consumers := make([]*nsq.Consumer, 0, len(subscriptions))
	for topic, handler := range subscriptions {
		consumer, err := nsq.NewConsumer(topic, channel, configs.NSQ.Address, handler)
		if err != nil {
			log.Fatalf("Failed to create consumer for %s: %v", topic, err)
		}
		if len(configs.NSQ.LookupdAddresses) > 0 {
			if err := consumer.ConnectToLookupd(configs.NSQ.LookupdAddresses); err != nil {
				log.Fatalf("Failed to connect to lookupd for %s: %v", topic, err)
			}
		}
		consumers = append(consumers, consumer)

		logger.Info("Subscribed to topic", logger.Fields{
			"topic":   topic,
			"channel": channel,
		})
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Info("Received shutdown signal", logger.Fields{
		"signal": sig.String(),
	})

	for _, consumer := range consumers {
		consumer.Stop()
	}

	logger.Info("Application stopped", logger.Fields{
		"app": appName,
	})
}
