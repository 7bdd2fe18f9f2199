package scheduler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/config"
	internalLog "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
)

func TestMonitoringMux(t *testing.T) {
	internalLog.Init(internalLog.SetupLogger())
	s := &Scheduler{Log: internalLog.GetLogger()}
	mux := s.monitoringMux(&config.RedisConfig{Host: "localhost", Port: "6379"})

	t.Run("ui root routes to asynqmon", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/monitoring/", nil)
		_, pattern := mux.Handler(req)

		assert.Equal(t, "/monitoring/", pattern)
	})

	t.Run("assets and api share the subtree", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/monitoring/api/queues", nil)
		_, pattern := mux.Handler(req)

		assert.Equal(t, "/monitoring/", pattern)
	})
}
