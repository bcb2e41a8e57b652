package phone

// Gate is a stateless secret-comparison predicate guarding a narrative area.
// It holds a secret and evaluates attempts by exact, case-sensitive string
// equality. Side effects of a successful attempt (unlock flags, view
// changes, registry updates) belong to the caller. There is no attempt
// counter and no lockout.
type Gate struct {
	secret string
}

// NewGate creates a gate for the given secret.
func NewGate(secret string) Gate {
	return Gate{secret: secret}
}

// Attempt reports whether input matches the secret exactly.
func (g Gate) Attempt(input string) bool {
	return g.secret != "" && input == g.secret
}
