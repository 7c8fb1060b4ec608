package schedulers

import (
	"fmt"
	"sort"
	"strings"

	"scheduler-sim/internal/core"
)

// Algorithm selects one of the supported scheduling policies. The set
// is closed: anything else fails with ErrUnsupportedAlgorithm.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota
	RoundRobin
	ShortestJobFirst
	PriorityScheduling
)

func (a Algorithm) String() string {
	switch a {
	case FirstComeFirstServe:
		return "fcfs"
	case RoundRobin:
		return "rr"
	case ShortestJobFirst:
		return "sjf"
	case PriorityScheduling:
		return "priority"
	}
	return "unknown"
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "fcfs":
		return FirstComeFirstServe, nil
	case "rr", "round_robin":
		return RoundRobin, nil
	case "sjf":
		return ShortestJobFirst, nil
	case "priority":
		return PriorityScheduling, nil
	}
	return 0, fmt.Errorf("%w: %q", core.ErrUnsupportedAlgorithm, name)
}

// Options carries per-run tuning. Quantum is only consulted by round
// robin.
type Options struct {
	Quantum int
}

// Result is a completed simulation: every process annotated with its
// timing metrics, plus the execution timeline across all of them.
type Result struct {
	Processes []core.Process
	Timeline  []core.Slice
}

// Run simulates the snapshot under the selected algorithm. The input
// slice is copied up front and never mutated; the returned processes
// keep the snapshot's order, all Terminated with metrics attached.
func Run(snapshot []core.Process, algorithm Algorithm, opts Options) (*Result, error) {
	if len(snapshot) == 0 {
		return nil, core.ErrEmptyInput
	}
	for _, p := range snapshot {
		if p.ID == "" || p.ArrivalTime < 0 || p.BurstTime <= 0 {
			return nil, fmt.Errorf("%w: %q", core.ErrIncompleteProcess, p.ID)
		}
	}

	processes := make([]core.Process, len(snapshot))
	copy(processes, snapshot)
	for i := range processes {
		processes[i].RemainingTime = processes[i].BurstTime
		processes[i].Scheduled = false
	}

	var timeline []core.Slice
	switch algorithm {
	case FirstComeFirstServe:
		timeline = scheduleFirstComeFirstServe(processes)
	case RoundRobin:
		if opts.Quantum <= 0 {
			return nil, fmt.Errorf("%w: got %d", core.ErrInvalidQuantum, opts.Quantum)
		}
		timeline = scheduleRoundRobin(processes, opts.Quantum)
	case ShortestJobFirst:
		timeline = scheduleShortestJobFirst(processes)
	case PriorityScheduling:
		timeline = schedulePriority(processes)
	default:
		return nil, fmt.Errorf("%w: %d", core.ErrUnsupportedAlgorithm, algorithm)
	}

	for i := range processes {
		p := &processes[i]
		p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
		p.WaitingTime = p.TurnaroundTime - p.BurstTime
		p.RemainingTime = 0
		p.State = core.StateTerminated
		p.Scheduled = true
	}

	return &Result{Processes: processes, Timeline: timeline}, nil
}

// arrivalOrder returns process indexes stable-sorted by arrival time,
// so simultaneous arrivals keep their insertion order.
func arrivalOrder(processes []core.Process) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return processes[order[i]].ArrivalTime < processes[order[j]].ArrivalTime
	})
	return order
}
