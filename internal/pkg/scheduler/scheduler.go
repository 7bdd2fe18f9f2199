package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/config"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeBookingReminder = "booking_reminder"
)

type Scheduler struct {
	Log log.Logger
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig) {
	ctx := context.Background()

	err := http.ListenAndServe(":8080", s.monitoringMux(cfg))
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

// monitoringMux mounts asynqmon as a subtree under its root path so the UI
// can serve its own assets and API routes.
func (s *Scheduler) monitoringMux(cfg *config.RedisConfig) *http.ServeMux {
	redisAddr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: asynq.RedisClientOpt{Addr: redisAddr, Password: cfg.Password, DB: cfg.DB},
	})

	mux := http.NewServeMux()
	mux.Handle(h.RootPath()+"/", h)
	return mux
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	redisAddr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr, Password: cfg.Password, DB: cfg.DB},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	// mux maps a type to a handler
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
