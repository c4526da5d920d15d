// Package page models the fetch lifecycle every page container goes through.
package page

// Status is a position in the idle → loading → success | error cycle.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Errored
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Errored:
		return "error"
	default:
		return "unknown"
	}
}

// State is one independently fetched slice of a page.
type State[T any] struct {
	Status  Status
	Data    T
	HasData bool
	Err     string
}

// Begin enters loading. Prior data stays in place until replaced.
func (s *State[T]) Begin() {
	s.Status = Loading
}

// Succeed stores data and clears any previous error.
func (s *State[T]) Succeed(data T) {
	s.Status = Success
	s.Data = data
	s.HasData = true
	s.Err = ""
}

// Fail stores a user-facing message and keeps prior data.
func (s *State[T]) Fail(message string) {
	s.Status = Errored
	s.Err = message
}

func (s State[T]) Loaded() bool { return s.Status == Success }
func (s State[T]) Failed() bool { return s.Status == Errored }
