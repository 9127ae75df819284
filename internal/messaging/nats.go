package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/stan.go"
)

type Config struct {
	URL       string
	ClusterID string
	ClientID  string
}

// NATSClient publishes domain events best-effort. A missing broker leaves the
// client in a disconnected state where publishes are silently skipped; event
// delivery is never load-bearing for a request.
type NATSClient struct {
	conn stan.Conn
}

func NewNATSClient(cfg Config) *NATSClient {
	conn, err := stan.Connect(cfg.ClusterID, cfg.ClientID, stan.NatsURL(cfg.URL))
	if err != nil {
		slog.Warn("NATS Streaming unavailable, event publishing disabled",
			"url", cfg.URL, "cluster", cfg.ClusterID, "error", err)
		return &NATSClient{}
	}

	slog.Info("Connected to NATS Streaming", "url", cfg.URL, "cluster", cfg.ClusterID, "client", cfg.ClientID)
	return &NATSClient{conn: conn}
}

func (nc *NATSClient) Publish(subject string, data interface{}) error {
	if nc.conn == nil {
		return nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := nc.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish to subject %s: %w", subject, err)
	}
	return nil
}

func (nc *NATSClient) Close() error {
	if nc.conn != nil {
		return nc.conn.Close()
	}
	return nil
}
