package schedulers

import "scheduler-sim/internal/core"

// scheduleShortestJobFirst greedily picks the arrived process with the
// smallest burst and runs it to completion.
func scheduleShortestJobFirst(processes []core.Process) []core.Slice {
	return scheduleBySelection(processes, func(a, b *core.Process) bool {
		if a.BurstTime != b.BurstTime {
			return a.BurstTime < b.BurstTime
		}
		return a.ArrivalTime < b.ArrivalTime
	})
}

// scheduleBySelection is the shared non-preemptive loop: at each step
// run the best arrived, not-yet-run process to completion per the less
// function, idling forward when nothing has arrived. Scanning in slice
// order makes insertion order the final tie-break.
func scheduleBySelection(processes []core.Process, less func(a, b *core.Process) bool) []core.Slice {
	done := make([]bool, len(processes))
	timeline := make([]core.Slice, 0, len(processes))
	currentTime := 0

	for completed := 0; completed < len(processes); completed++ {
		best := -1
		for i := range processes {
			if done[i] || processes[i].ArrivalTime > currentTime {
				continue
			}
			if best == -1 || less(&processes[i], &processes[best]) {
				best = i
			}
		}
		if best == -1 {
			// Nothing has arrived yet; jump to the next arrival.
			nextArrival := -1
			for i := range processes {
				if done[i] {
					continue
				}
				if nextArrival == -1 || processes[i].ArrivalTime < nextArrival {
					nextArrival = processes[i].ArrivalTime
				}
			}
			currentTime = nextArrival
			completed--
			continue
		}

		p := &processes[best]
		p.StartTime = currentTime
		p.CompletionTime = currentTime + p.BurstTime
		currentTime = p.CompletionTime
		done[best] = true
		timeline = append(timeline, core.Slice{PID: p.ID, Start: p.StartTime, Stop: p.CompletionTime})
	}
	return timeline
}
