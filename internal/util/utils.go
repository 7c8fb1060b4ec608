package util

import "scheduler-sim/internal/responses"

func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnAroundTime)
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}
