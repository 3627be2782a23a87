package ecs

// System is one ordered step run against a world value.
type System[W any] interface {
	Update(w W, dt float64)
}

// SystemFunc adapts a plain function to System.
type SystemFunc[W any] func(w W, dt float64)

func (f SystemFunc[W]) Update(w W, dt float64) { f(w, dt) }

type Scheduler[W any] struct {
	systems []System[W]
}

func NewScheduler[W any](systems ...System[W]) *Scheduler[W] {
	copied := append([]System[W](nil), systems...)
	return &Scheduler[W]{systems: copied}
}

func (s *Scheduler[W]) Add(system System[W]) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler[W]) Update(w W, dt float64) {
	if s == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}

func (s *Scheduler[W]) Systems() []System[W] {
	systems := make([]System[W], 0, len(s.systems))
	return append(systems, s.systems...)
}
