package requests

type AddProcessRequest struct {
	ProcessID   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

// ScheduleRequest tunes a single run. Quantum is a pointer so an
// omitted field falls back to the configured default while an explicit
// zero is still rejected as invalid.
type ScheduleRequest struct {
	Quantum *int `json:"quantum"`
}
