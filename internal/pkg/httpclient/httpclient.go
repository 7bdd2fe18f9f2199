package httpclient

import (
	"time"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/config"
	circuit "github.com/rubyist/circuitbreaker"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "rate":
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinimumSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailure)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	client := circuit.NewHTTPClient(timeout, cfg.ConsecutiveFailure, nil)
	// route every request through the configured breaker
	client.Panel.Add("_default", cb)
	return client
}
