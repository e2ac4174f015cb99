// Package resilience provides reliability and fault tolerance patterns for
// the application: circuit breakers around message broker publishes and retry
// logic with exponential backoff for startup dials and transient failures.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.BrokerPublishConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return publishMessage()
//	})
//
//	err := retry.WithBackoff(ctx, retry.BrokerConnectConfig(), func() error {
//	    return dialBroker()
//	})
package resilience
