package schedulers

import "scheduler-sim/internal/core"

// scheduleFirstComeFirstServe runs every process to completion in
// arrival order. The CPU idles through any gap before the next
// arrival.
func scheduleFirstComeFirstServe(processes []core.Process) []core.Slice {
	timeline := make([]core.Slice, 0, len(processes))
	currentTime := 0
	for _, i := range arrivalOrder(processes) {
		p := &processes[i]
		if p.ArrivalTime > currentTime {
			currentTime = p.ArrivalTime
		}
		p.StartTime = currentTime
		p.CompletionTime = currentTime + p.BurstTime
		currentTime = p.CompletionTime
		timeline = append(timeline, core.Slice{PID: p.ID, Start: p.StartTime, Stop: p.CompletionTime})
	}
	return timeline
}
