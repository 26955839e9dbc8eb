package signals

// Registrar guards the process-wide signal disposition.
// Claim runs install at most once successfully; later calls fail with ErrAlreadyRegistered.
type Registrar interface {
	Claim(install func() error) error
}
