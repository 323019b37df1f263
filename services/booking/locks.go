package booking

import "sync"

// scheduleLocks serializes conflict-check-then-write sequences per
// (professional, date) so two concurrent creates for overlapping windows
// cannot both pass the conflict check. Only guards a single process; a
// multi-instance deployment needs the constraint pushed into storage.
type scheduleLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (sl *scheduleLocks) lock(professionalID, date string) func() {
	key := professionalID + "|" + date

	sl.mu.Lock()
	if sl.locks == nil {
		sl.locks = make(map[string]*sync.Mutex)
	}
	m, ok := sl.locks[key]
	if !ok {
		m = &sync.Mutex{}
		sl.locks[key] = m
	}
	sl.mu.Unlock()

	m.Lock()
	return m.Unlock
}
