package schedulers

import "scheduler-sim/internal/core"

// scheduleRoundRobin dispatches off a FIFO ready queue in fixed
// quanta. Processes that arrive while a slice runs are queued ahead of
// the preempted process; StartTime is the first dispatch only.
func scheduleRoundRobin(processes []core.Process, quantum int) []core.Slice {
	arrivals := arrivalOrder(processes)
	next := 0
	queue := make([]int, 0, len(processes))
	started := make([]bool, len(processes))
	timeline := make([]core.Slice, 0, len(processes))
	currentTime := 0
	remaining := len(processes)

	admit := func(until int) {
		for next < len(arrivals) && processes[arrivals[next]].ArrivalTime <= until {
			i := arrivals[next]
			processes[i].State = core.StateReady
			queue = append(queue, i)
			next++
		}
	}
	admit(currentTime)

	for remaining > 0 {
		if len(queue) == 0 {
			// CPU idles until the next arrival.
			currentTime = processes[arrivals[next]].ArrivalTime
			admit(currentTime)
			continue
		}

		i := queue[0]
		queue = queue[1:]
		p := &processes[i]
		if !started[i] {
			started[i] = true
			p.StartTime = currentTime
		}
		p.State = core.StateRunning

		run := quantum
		if p.RemainingTime < run {
			run = p.RemainingTime
		}
		timeline = append(timeline, core.Slice{PID: p.ID, Start: currentTime, Stop: currentTime + run})
		currentTime += run
		p.RemainingTime -= run

		admit(currentTime)
		if p.RemainingTime > 0 {
			p.State = core.StateReady
			queue = append(queue, i)
		} else {
			p.CompletionTime = currentTime
			p.State = core.StateTerminated
			remaining--
		}
	}
	return timeline
}
