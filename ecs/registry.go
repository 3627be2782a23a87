package ecs

// Registry hands out entity handles. Destroyed ids are reused with a bumped
// generation so stale handles stop reporting alive.
type Registry struct {
	gen  []generation
	free []entityID
	live int
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Create() Entity {
	if r == nil {
		return 0
	}
	r.live++
	if n := len(r.free); n > 0 {
		id := r.free[n-1]
		r.free = r.free[:n-1]
		return makeEntity(id, r.gen[id-1])
	}
	r.gen = append(r.gen, 0)
	return makeEntity(entityID(len(r.gen)), 0)
}

// Destroy retires e. It returns false for stale or unknown handles.
func (r *Registry) Destroy(e Entity) bool {
	if !r.IsAlive(e) {
		return false
	}
	id := e.id()
	r.gen[id-1]++
	r.free = append(r.free, id)
	r.live--
	return true
}

func (r *Registry) IsAlive(e Entity) bool {
	if r == nil || !e.Valid() || int(e.id()) > len(r.gen) {
		return false
	}
	return r.gen[e.id()-1] == e.generation()
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return r.live
}
