package schedulers

import "scheduler-sim/internal/core"

// schedulePriority greedily picks the arrived process with the
// smallest priority value (lower value wins the CPU) and runs it to
// completion. Same structure as shortest job first, different
// selection key.
func schedulePriority(processes []core.Process) []core.Slice {
	return scheduleBySelection(processes, func(a, b *core.Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.ArrivalTime < b.ArrivalTime
	})
}
