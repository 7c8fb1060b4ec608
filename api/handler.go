package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"scheduler-sim/config"
	"scheduler-sim/internal/core"
	"scheduler-sim/internal/logging"
	"scheduler-sim/internal/registry"
	"scheduler-sim/internal/requests"
	"scheduler-sim/internal/responses"
	"scheduler-sim/internal/schedulers"
)

type SchedulerHandler interface {
	AddProcess(ctx *fiber.Ctx) error
	RemoveProcess(ctx *fiber.Ctx) error
	ListProcesses(ctx *fiber.Ctx) error
	RunSimulation(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	registry *registry.Registry
	logger   *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, registry *registry.Registry, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, registry: registry, logger: logger}
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	var request requests.AddProcessRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	process, err := s.registry.Add(core.Process{
		ID:          request.ProcessID,
		ArrivalTime: request.ArrivalTime,
		BurstTime:   request.BurstTime,
		Priority:    request.Priority,
	})
	if err != nil {
		s.logger.Warn("add process rejected", "pid", request.ProcessID, logging.ErrAttr(err))
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(responses.FromProcess(process))
}

func (s *SchedulerHandlerImpl) RemoveProcess(ctx *fiber.Ctx) error {
	s.registry.Remove(ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) ListProcesses(ctx *fiber.Ctx) error {
	processes := s.registry.List()
	processDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		processDetails = append(processDetails, responses.FromProcess(p))
	}
	return ctx.JSON(processDetails)
}

// RunSimulation snapshots the registry, runs the selected algorithm
// and installs the annotated output as the new registry contents.
func (s *SchedulerHandlerImpl) RunSimulation(ctx *fiber.Ctx) error {
	algorithm, err := schedulers.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	opts := schedulers.Options{Quantum: s.config.RoundRobinTimeQuantum}
	if len(ctx.Body()) > 0 {
		var request requests.ScheduleRequest
		if err := ctx.BodyParser(&request); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request format",
			})
		}
		if request.Quantum != nil {
			opts.Quantum = *request.Quantum
		}
	}

	result, err := schedulers.Run(s.registry.List(), algorithm, opts)
	if err != nil {
		s.logger.Warn("simulation failed", "algorithm", algorithm.String(), logging.ErrAttr(err))
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if err := s.registry.ReplaceAll(result.Processes); err != nil {
		s.logger.Error("install simulation output failed", logging.ErrAttr(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	response := schedulers.GenerateResponse(algorithm, result)
	s.logger.Info("simulation complete",
		"algorithm", algorithm.String(),
		"run_id", response.RunID,
		"processes", len(result.Processes),
	)
	return ctx.JSON(response)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrDuplicateID):
		return fiber.StatusConflict
	case errors.Is(err, core.ErrIncompleteProcess):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, core.ErrValidation),
		errors.Is(err, core.ErrEmptyInput),
		errors.Is(err, core.ErrInvalidQuantum),
		errors.Is(err, core.ErrUnsupportedAlgorithm):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
