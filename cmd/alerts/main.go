package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/config"
	"github.com/caredesk/homecare-backend-go/internal/pkg/alerts"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"
)

// The alerts worker consumes unresolved-service alerts from rabbitmq and
// mails the coordination team. It runs as its own process so a slow or down
// SMTP server never blocks the API.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		return
	}
	if cfg.SMTP.Host == "" || cfg.SMTP.Coordinator == "" {
		logger.Error("SMTP_HOST and SMTP_COORDINATOR_ADDRESS are required for the alerts worker")
		return
	}

	client, err := mail.NewClient(cfg.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.SMTP.Port),
		mail.WithUsername(cfg.SMTP.Username),
		mail.WithPassword(cfg.SMTP.Password),
	)
	if err != nil {
		logger.Error("Failed to create mail client", "error", err)
		return
	}
	defer client.Close()

	dialCtx, cancelDial := context.WithTimeout(context.Background(), time.Duration(cfg.SMTP.DialTimeout)*time.Second)
	defer cancelDial()
	if err := client.DialWithContext(dialCtx); err != nil {
		logger.Error("Failed to connect to mail server", "error", err)
		return
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("Failed to connect to rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("Failed to open rabbitmq channel", "error", err)
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.AlertQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("Failed to declare queue", "error", err)
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("Failed to start consuming", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Error("Delivery channel closed, stopping consumer")
					return
				}
				if err := handleAlert(cfg, client, msg.Body); err != nil {
					logger.Error("Failed to handle alert", "error", err)
					_ = msg.Nack(false, false)
					continue
				}
				_ = msg.Ack(false)
				logger.Info("Alert mail sent", "queue", q.Name)
			}
		}
	}()

	logger.Info("Alerts worker started", "queue", q.Name)
	<-sigChan
	logger.Info("Shutting down alerts worker...")
	cancel()
	wg.Wait()
}

func handleAlert(cfg *config.Config, client *mail.Client, body []byte) error {
	var alert alerts.UnresolvedServiceAlert
	if err := json.Unmarshal(body, &alert); err != nil {
		return fmt.Errorf("unmarshal alert: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(cfg.SMTP.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(cfg.SMTP.Coordinator); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	msg.Subject(fmt.Sprintf("Uncovered services for %s (%d-%02d)", alert.ClientName, alert.Year, alert.Month))
	msg.SetBodyString(mail.TypeTextPlain, formatAlertBody(alert))

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func formatAlertBody(alert alerts.UnresolvedServiceAlert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Client %s (%s) has %d uncovered festive-day services in %d-%02d:\n\n",
		alert.ClientName, alert.ClientID, len(alert.Unresolved), alert.Year, alert.Month)

	for _, u := range alert.Unresolved {
		fmt.Fprintf(&b, "  - %s: %.1f hours (worker %s, reason: %s)\n",
			u.Date.Format("2006-01-02"), u.Hours, u.WorkerID, u.Reason)
	}

	b.WriteString("\nNo holiday/weekend worker covers these days. Please arrange a substitute manually.\n")
	return b.String()
}
