package core

// State tracks where a process is in its lifecycle. Non-preemptive
// algorithms only ever observe New and Terminated; Ready and Running
// show up as transient bookkeeping during round robin.
type State int

const (
	StateNew State = iota
	StateReady
	StateRunning
	StateWaiting
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateWaiting:
		return "waiting"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// Process is the unit of simulation. ArrivalTime, BurstTime and
// Priority are caller-owned inputs and are never rewritten by a run;
// the timing fields below Scheduled are derived output and only
// meaningful once Scheduled is true.
type Process struct {
	ID            string
	ArrivalTime   int
	BurstTime     int
	RemainingTime int
	// Lower value means higher priority.
	Priority int
	State    State

	Scheduled      bool
	StartTime      int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
}

// Slice is one contiguous stretch of CPU time given to a process.
// Non-preemptive runs produce one slice per process; round robin
// produces one per dispatch.
type Slice struct {
	PID   string
	Start int
	Stop  int
}
