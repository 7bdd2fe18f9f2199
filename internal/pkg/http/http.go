package http

import (
	"fmt"
	"log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.elastic.co/apm"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Use(apmTransaction)

	return app
}

// apmTransaction wraps every request in an elastic apm transaction.
func apmTransaction(c *fiber.Ctx) error {
	name := fmt.Sprintf("%s %s", c.Method(), c.Path())
	tx := apm.DefaultTracer.StartTransaction(name, "request")
	defer tx.End()

	ctx := apm.ContextWithTransaction(c.UserContext(), tx)
	c.SetUserContext(ctx)

	err := c.Next()
	tx.Result = fmt.Sprintf("HTTP %d", c.Response().StatusCode())
	return err
}

func StartHttpServer(app *fiber.App, port string) {
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("failed to start http server: %v", err)
	}
}
