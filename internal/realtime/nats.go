package realtime

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/nats-io/nats.go"
)

// NATSBridge subscribes to NATS subjects and pushes messages into the Hub.
type NATSBridge struct {
	conn *nats.Conn
	hub  *Hub
}

func NewNATSBridge(natsURL string, hub *Hub) (*NATSBridge, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATSBridge{conn: nc, hub: hub}, nil
}

// Subscribe listens for application activity on jobs.*.applications
func (b *NATSBridge) Subscribe() error {
	subject := "jobs.*.applications"
	_, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		jobID, err := parseJobIDFromSubject(msg.Subject)
		if err != nil {
			log.Printf("nats: bad subject %q: %v", msg.Subject, err)
			return
		}

		// Wrap the raw event payload in the outgoing envelope
		envelope := outgoingMsg{
			Type:    "job.applications",
			JobID:   jobID,
			Payload: json.RawMessage(msg.Data),
		}
		data, err := json.Marshal(envelope)
		if err != nil {
			log.Printf("nats: marshal envelope: %v", err)
			return
		}

		b.hub.broadcast <- broadcastMsg{jobID: jobID, payload: data}
	})
	if err != nil {
		return fmt.Errorf("nats subscribe %q: %w", subject, err)
	}

	log.Printf("NATS bridge subscribed to: %s", subject)
	return nil
}

// Close drains the NATS connection.
func (b *NATSBridge) Close() {
	if err := b.conn.Drain(); err != nil {
		log.Printf("nats drain: %v", err)
	}
}

// parseJobIDFromSubject extracts the job id from "jobs.<jobID>.applications"
func parseJobIDFromSubject(subject string) (string, error) {
	parts := strings.Split(subject, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("expected 3 parts, got %d", len(parts))
	}
	if parts[1] == "" {
		return "", fmt.Errorf("empty job id")
	}
	return parts[1], nil
}
