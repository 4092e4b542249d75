package models

// SessionState enumerates the authentication state machine.
type SessionState string

const (
	StateUnauthenticated   SessionState = "unauthenticated"
	StatePendingValidation SessionState = "pending_validation"
	StateAuthenticated     SessionState = "authenticated"
	StateRejected          SessionState = "rejected"
)

// Session is the per-visitor authentication state carried across render
// cycles. AttemptedAuth is a one-shot flag: set when the visitor submits a
// token, cleared at the end of the next render cycle.
type Session struct {
	Token         string       `json:"token"`
	State         SessionState `json:"state"`
	Authenticated bool         `json:"authenticated"`
	AttemptedAuth bool         `json:"attempted_auth"`
}

// NewSession returns the initial session state.
func NewSession() Session {
	return Session{State: StateUnauthenticated}
}

// AuthEvent records a user-initiated token submission, collected as a value
// and applied by the next render cycle.
type AuthEvent struct {
	Token string
}

// MessageLevel classifies a status message for the renderer.
type MessageLevel string

const (
	LevelSuccess MessageLevel = "success"
	LevelError   MessageLevel = "error"
	LevelWarning MessageLevel = "warning"
)

// StatusMessage is the per-cycle message surfaced to the visitor. A nil
// message means the renderer stays silent (already authenticated).
type StatusMessage struct {
	Level MessageLevel `json:"level"`
	Text  string       `json:"text"`
}

// Messages surfaced by the session state machine.
const (
	MsgAuthenticated      = "Successfully Authenticated"
	MsgInvalidToken       = "Invalid Token"
	MsgPleaseAuthenticate = "Please Authenticate"
	MsgTokenCreated       = "Successfully Created Token"
)
