package responses

import "scheduler-sim/internal/core"

type ProcessResponse struct {
	ProcessID      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	State          string `json:"state"`
	Scheduled      bool   `json:"scheduled"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type SliceResponse struct {
	ProcessID string `json:"process_id"`
	Start     int    `json:"start"`
	Stop      int    `json:"stop"`
}

type ScheduleResponse struct {
	RunID                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []SliceResponse   `json:"timeline"`
}

// FromProcess maps the core entity onto the wire shape. Timing fields
// stay zero until the process has been through a run.
func FromProcess(p core.Process) ProcessResponse {
	detail := ProcessResponse{
		ProcessID:   p.ID,
		ArrivalTime: p.ArrivalTime,
		BurstTime:   p.BurstTime,
		Priority:    p.Priority,
		State:       p.State.String(),
		Scheduled:   p.Scheduled,
	}
	if p.Scheduled {
		detail.StartTime = p.StartTime
		detail.CompletionTime = p.CompletionTime
		detail.ResponseTime = p.StartTime - p.ArrivalTime
		detail.TurnAroundTime = p.TurnaroundTime
		detail.WaitingTime = p.WaitingTime
	}
	return detail
}
