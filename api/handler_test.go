package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduler-sim/config"
	"scheduler-sim/internal/registry"
	"scheduler-sim/internal/responses"
)

func newTestApp() *fiber.App {
	cfg := &config.SchedulerConfig{Port: 0, RoundRobinTimeQuantum: 2}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	handler := NewSchedulerHandlerImpl(cfg, registry.New(), logger)

	app := fiber.New()
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/processes", handler.AddProcess)
	v1.Get("/processes", handler.ListProcesses)
	v1.Delete("/processes/:id", handler.RemoveProcess)
	v1.Post("/schedule/:algorithm", handler.RunSimulation)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func addProcess(t *testing.T, app *fiber.App, id string, arrival, burst, priority int) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/processes", fiber.Map{
		"process_id":   id,
		"arrival_time": arrival,
		"burst_time":   burst,
		"priority":     priority,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestAddProcessValidationAndConflict(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/processes", fiber.Map{
		"process_id": "P1", "arrival_time": 0, "burst_time": 5,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[responses.ProcessResponse](t, resp)
	assert.Equal(t, "P1", created.ProcessID)
	assert.Equal(t, "new", created.State)
	assert.False(t, created.Scheduled)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/processes", fiber.Map{
		"process_id": "P1", "arrival_time": 1, "burst_time": 2,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/processes", fiber.Map{
		"process_id": "P2", "arrival_time": 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestListProcesses(t *testing.T) {
	app := newTestApp()
	addProcess(t, app, "P1", 0, 5, 0)
	addProcess(t, app, "P2", 1, 3, 0)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/processes", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	listed := decode[[]responses.ProcessResponse](t, resp)
	require.Len(t, listed, 2)
	assert.Equal(t, "P1", listed[0].ProcessID)
	assert.Equal(t, "P2", listed[1].ProcessID)
}

func TestRemoveProcessIsIdempotent(t *testing.T) {
	app := newTestApp()
	addProcess(t, app, "P1", 0, 5, 0)

	resp := doJSON(t, app, http.MethodDelete, "/api/v1/processes/P1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/processes/P1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/processes", nil)
	listed := decode[[]responses.ProcessResponse](t, resp)
	assert.Empty(t, listed)
}

func TestRunSimulationAnnotatesRegistry(t *testing.T) {
	app := newTestApp()
	addProcess(t, app, "P1", 0, 5, 0)
	addProcess(t, app, "P2", 1, 3, 0)
	addProcess(t, app, "P3", 2, 8, 0)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/schedule/fcfs", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	scheduled := decode[responses.ScheduleResponse](t, resp)

	assert.Equal(t, "fcfs", scheduled.Algorithm)
	assert.NotEmpty(t, scheduled.RunID)
	assert.Equal(t, 16, scheduled.TotalTime)
	require.Len(t, scheduled.Details, 3)

	byID := make(map[string]responses.ProcessResponse)
	for _, d := range scheduled.Details {
		byID[d.ProcessID] = d
	}
	assert.Equal(t, 0, byID["P1"].WaitingTime)
	assert.Equal(t, 4, byID["P2"].WaitingTime)
	assert.Equal(t, 6, byID["P3"].WaitingTime)

	// The run output becomes the new registry contents.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/processes", nil)
	listed := decode[[]responses.ProcessResponse](t, resp)
	require.Len(t, listed, 3)
	for _, p := range listed {
		assert.True(t, p.Scheduled)
		assert.Equal(t, "terminated", p.State)
	}
}

func TestRunSimulationRoundRobinWithQuantumOverride(t *testing.T) {
	app := newTestApp()
	addProcess(t, app, "P1", 0, 5, 0)
	addProcess(t, app, "P2", 1, 3, 0)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/schedule/rr", fiber.Map{"quantum": 2})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	scheduled := decode[responses.ScheduleResponse](t, resp)

	require.Len(t, scheduled.Timeline, 5)
	byID := make(map[string]responses.ProcessResponse)
	for _, d := range scheduled.Details {
		byID[d.ProcessID] = d
	}
	assert.Equal(t, 7, byID["P2"].CompletionTime)
	assert.Equal(t, 8, byID["P1"].CompletionTime)
}

func TestRunSimulationErrorMapping(t *testing.T) {
	app := newTestApp()

	// Empty registry.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/schedule/fcfs", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Unknown selector.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/schedule/lottery", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Explicit zero quantum is invalid, not a fallback to the default.
	addProcess(t, app, "P1", 0, 5, 0)
	resp = doJSON(t, app, http.MethodPost, "/api/v1/schedule/rr", fiber.Map{"quantum": 0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Errors leave the registry usable.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/schedule/rr", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
