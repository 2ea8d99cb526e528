package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
)

// Tails the order.created topic and prints every event, for watching
// checkouts land during local development.
func main() {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{"localhost:9092"},
		Topic:   "orders.created",
		GroupID: "events-watcher",
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			return
		}
		log.Printf("order created %s: %s", msg.Key, msg.Value)
	}
}
