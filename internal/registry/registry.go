package registry

import (
	"fmt"
	"sync"

	"scheduler-sim/internal/core"
)

// Registry is the in-memory, insertion-ordered collection of process
// records. Mutations are serialized behind a mutex because the HTTP
// layer serves requests concurrently; List hands out deep copies so a
// snapshot can outlive later mutations.
type Registry struct {
	mu        sync.RWMutex
	processes []core.Process
	ids       map[string]struct{}
}

func New() *Registry {
	return &Registry{
		processes: make([]core.Process, 0),
		ids:       make(map[string]struct{}),
	}
}

// Add validates and appends a record. The record enters in StateNew
// with derived fields cleared, whatever the caller put in them.
func (r *Registry) Add(p core.Process) (core.Process, error) {
	if p.ID == "" {
		return core.Process{}, fmt.Errorf("%w: missing process id", core.ErrValidation)
	}
	if p.ArrivalTime < 0 {
		return core.Process{}, fmt.Errorf("%w: arrival time %d is negative", core.ErrValidation, p.ArrivalTime)
	}
	if p.BurstTime <= 0 {
		return core.Process{}, fmt.Errorf("%w: burst time %d must be positive", core.ErrValidation, p.BurstTime)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[p.ID]; ok {
		return core.Process{}, fmt.Errorf("%w: %q", core.ErrDuplicateID, p.ID)
	}

	p.State = core.StateNew
	p.RemainingTime = p.BurstTime
	p.Scheduled = false
	p.StartTime = 0
	p.CompletionTime = 0
	p.TurnaroundTime = 0
	p.WaitingTime = 0

	r.ids[p.ID] = struct{}{}
	r.processes = append(r.processes, p)
	return p, nil
}

// Remove drops the process with the given id. Removing an absent id is
// a no-op: the interactive caller may race its own view of the list
// and that is harmless.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[id]; !ok {
		return
	}
	delete(r.ids, id)
	for i := range r.processes {
		if r.processes[i].ID == id {
			r.processes = append(r.processes[:i], r.processes[i+1:]...)
			break
		}
	}
}

// List returns a snapshot of the current contents in insertion order.
func (r *Registry) List() []core.Process {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]core.Process, len(r.processes))
	copy(snapshot, r.processes)
	return snapshot
}

// ReplaceAll swaps the registry contents for the engine's annotated
// output. Uniqueness still holds afterwards; a duplicate in the
// replacement leaves the registry untouched.
func (r *Registry) ReplaceAll(processes []core.Process) error {
	ids := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if _, ok := ids[p.ID]; ok {
			return fmt.Errorf("%w: %q", core.ErrDuplicateID, p.ID)
		}
		ids[p.ID] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.processes = make([]core.Process, len(processes))
	copy(r.processes, processes)
	r.ids = ids
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.processes)
}
