package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"scheduler-sim/api"
	"scheduler-sim/config"
	"scheduler-sim/internal/logging"
	"scheduler-sim/internal/registry"
)

func main() {
	logger := logging.BuildLogger()
	cfg := config.GetSchedulerConfig()

	handler := api.NewSchedulerHandlerImpl(cfg, registry.New(), logger)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(recover.New())

	apiGroup := app.Group("/api")
	v1 := apiGroup.Group("/v1")
	{
		v1.Post("/processes", handler.AddProcess)
		v1.Get("/processes", handler.ListProcesses)
		v1.Delete("/processes/:id", handler.RemoveProcess)
		v1.Post("/schedule/:algorithm", handler.RunSimulation)
	}

	logger.Info("scheduler listening", "port", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Error("server stopped", logging.ErrAttr(err))
		os.Exit(1)
	}
}
