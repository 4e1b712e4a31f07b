package alarm

// Actor identifies who changed the tracked alarm.
type Actor struct {
	// Hostname is the machine name the request came from.
	Hostname string
	// Username is the system user who sent it.
	Username string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// String renders the actor as user@host.
func (a *Actor) String() string {
	if a == nil {
		return "<unknown>"
	}

	return a.Username + "@" + a.Hostname
}
