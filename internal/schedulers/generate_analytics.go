package schedulers

import (
	"github.com/google/uuid"

	"scheduler-sim/internal/responses"
	"scheduler-sim/internal/util"
)

// GenerateResponse folds a finished run into the wire response:
// per-process details, the Gantt timeline, and the aggregate
// analytics (makespan, idle time, utilization, throughput, averages).
func GenerateResponse(algorithm Algorithm, result *Result) responses.ScheduleResponse {
	processDetails := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		processDetails = append(processDetails, responses.FromProcess(p))
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	var totalTime, busyTime int
	timeline := make([]responses.SliceResponse, 0, len(result.Timeline))
	for _, s := range result.Timeline {
		if s.Stop > totalTime {
			totalTime = s.Stop
		}
		busyTime += s.Stop - s.Start
		timeline = append(timeline, responses.SliceResponse{ProcessID: s.PID, Start: s.Start, Stop: s.Stop})
	}
	idleTime := totalTime - busyTime

	var utilization, throughput float64
	if totalTime > 0 {
		utilization = 1 - float64(idleTime)/float64(totalTime)
		throughput = float64(len(result.Processes)) / float64(totalTime)
	}

	return responses.ScheduleResponse{
		RunID:                 uuid.NewString(),
		Algorithm:             algorithm.String(),
		TotalTime:             totalTime,
		IdleTime:              idleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Details:               processDetails,
		Timeline:              timeline,
	}
}
