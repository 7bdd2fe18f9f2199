package main

import (
	"context"
	"log"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/config"
	bookingHandler "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/handler"
	bookingRepositories "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/repositories"
	bookingUsecases "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/usecases"
	cabinHandler "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/handler"
	cabinRepositories "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/repositories"
	cabinUsecases "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/usecases"
	guestHandler "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/handler"
	guestRepositories "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/repositories"
	guestUsecases "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/usecases"
	settingHandler "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/handler"
	settingRepositories "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/repositories"
	settingUsecases "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/usecases"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/database"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/http"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/httpclient"
	log_internal "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/messagestream"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/middleware"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/redis"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/scheduler"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/uploader"
	router "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, sched, taskHandlers := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	go sched.StartHandler(&cfg.Redis, []string{scheduler.TypeBookingReminder}, taskHandlers)
	go sched.StartMonitoring(&cfg.Redis)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *scheduler.Scheduler, []func(ctx context.Context, t *asynq.Task) error) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init distributed lock
	pool := goredis.NewPool(redisClient)
	rs := redsync.New(pool)

	// init task scheduler
	sched := &scheduler.Scheduler{Log: logger}
	schedulerClient := sched.InitClient(&cfg.Redis)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	up := uploader.New(httpClient, &cfg.Storage, logger)

	bookingRepo := bookingRepositories.New(db, logger, httpClient, &cfg.UserService, redisClient, rs, schedulerClient)
	bookingUsecase := bookingUsecases.New(bookingRepo, logger, publisher)

	cabinRepo := cabinRepositories.New(db, logger)
	cabinUsecase := cabinUsecases.New(cabinRepo, logger, up, &cfg.Storage)

	settingRepo := settingRepositories.New(db, logger, redisClient)
	settingUsecase := settingUsecases.New(settingRepo, logger)

	guestRepo := guestRepositories.New(db, logger)
	guestUsecase := guestUsecases.New(guestRepo, logger)

	m := middleware.Middleware{
		Log:  logZap,
		Repo: bookingRepo,
	}

	vld := validator.New()
	handlerBooking := bookingHandler.BookingHandler{
		Log:       logZap,
		Validator: vld,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}
	handlerCabin := cabinHandler.CabinHandler{
		Log:       logZap,
		Validator: vld,
		Usecase:   cabinUsecase,
	}
	handlerSetting := settingHandler.SettingHandler{
		Log:       logZap,
		Validator: vld,
		Usecase:   settingUsecase,
	}
	handlerGuest := guestHandler.GuestHandler{
		Log:       logZap,
		Validator: vld,
		Usecase:   guestUsecase,
	}

	var messageRouters []*message.Router

	consumeBookingCreatedRouter, err := messagestream.NewRouter(publisher, "booking_created_poisoned", "booking_created_handler", bookingUsecases.TopicBookingCreated, subscriber, handlerBooking.ConsumeBookingCreatedQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_booking_created router", err)
	}

	messageRouters = append(messageRouters, consumeBookingCreatedRouter)

	taskHandlers := []func(ctx context.Context, t *asynq.Task) error{
		handlerBooking.SendBookingReminder,
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &handlerBooking, &handlerCabin, &handlerSetting, &handlerGuest, &m)

	return r, messageRouters, sched, taskHandlers

}
