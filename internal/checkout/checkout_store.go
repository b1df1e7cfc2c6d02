package checkout

import "sync"

// FlowStore keeps per-shopper checkout state. Flows are transient UI
// state, so an in-process map is enough; a lost flow just restarts at
// the shipping step.
type FlowStore struct {
	mu    sync.RWMutex
	flows map[string]Flow
}

func NewFlowStore() *FlowStore {
	return &FlowStore{flows: make(map[string]Flow)}
}

// Get returns the flow for key, creating a fresh shipping-step flow on
// first use.
func (s *FlowStore) Get(key string) Flow {
	s.mu.RLock()
	flow, ok := s.flows[key]
	s.mu.RUnlock()
	if ok {
		return flow
	}
	return Flow{Step: StepShipping}
}

func (s *FlowStore) Set(key string, flow Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[key] = flow
}

func (s *FlowStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, key)
}

// BeginProcessing flips the processing guard, returning false when a
// submission is already in flight for this key.
func (s *FlowStore) BeginProcessing(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[key]
	if !ok || flow.IsProcessing {
		return false
	}
	flow.IsProcessing = true
	s.flows[key] = flow
	return true
}

// EndProcessing clears the guard.
func (s *FlowStore) EndProcessing(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if flow, ok := s.flows[key]; ok {
		flow.IsProcessing = false
		s.flows[key] = flow
	}
}
