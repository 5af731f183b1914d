package service

// MetricsRecorder receives business counters from the use case layer.
type MetricsRecorder interface {
	QuoteCreated(policyType string)
	QuoteTransitioned(from, to string)
	QuoteRejected(operation, reason string)
	CustomerRegistered()
}
