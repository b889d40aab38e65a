package ai

// Client is the language-model backend. Temperature is fixed per operation
// by the callers: extraction runs cold, creative tasks run warm.
type Client interface {
	Complete(system, user string, temperature float64) (string, error)
}
