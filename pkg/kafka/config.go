package kafka

// Config holds Kafka connection parameters.
type Config struct {
	// Brokers lists the bootstrap broker addresses.
	Brokers []string

	// ClientID identifies this service to the cluster.
	ClientID string
}
