package kafka

import "time"

// Config holds Kafka connection parameters.
type Config struct {
	Brokers  []string
	ClientID string

	// SASL configuration for authentication.
	SASLEnabled   bool
	SASLMechanism string // "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string

	// TLS enables TLS for broker connections.
	TLS bool

	// BatchTimeout bounds how long a writer waits to fill a batch. Zero means 10ms.
	BatchTimeout time.Duration
}
