package auth

import "RiskBoard/internal/domain/models"

// TokenValidator abstracts the codec for the state machine.
type TokenValidator interface {
	Validate(token string) Validation
}

// Transition runs one render-cycle evaluation of the session state machine.
// The pending user event (may be nil) is applied first, then any stored
// token is validated. It returns the updated session and the status message
// for the renderer; a nil message means stay silent.
//
// State is never mutated in place: the caller owns the session value and
// decides where the returned one lives.
func Transition(s models.Session, ev *models.AuthEvent, v TokenValidator) (models.Session, *models.StatusMessage) {
	if ev != nil {
		s.Token = ev.Token
		s.State = models.StatePendingValidation
		s.AttemptedAuth = true
	}

	if s.Token != "" {
		if v.Validate(s.Token).Valid {
			s.Authenticated = true
			s.State = models.StateAuthenticated
		} else {
			// rejected tokens are discarded immediately, forcing re-entry
			s.Authenticated = false
			s.Token = ""
			s.State = models.StateRejected
		}
	}

	msg := deriveMessage(s)

	// one-shot signals reset at end of cycle; a rejected session starts the
	// next cycle from scratch
	s.AttemptedAuth = false
	if s.State == models.StateRejected {
		s.State = models.StateUnauthenticated
	}

	return s, msg
}

func deriveMessage(s models.Session) *models.StatusMessage {
	switch s.State {
	case models.StateAuthenticated:
		if s.AttemptedAuth {
			return &models.StatusMessage{Level: models.LevelSuccess, Text: models.MsgAuthenticated}
		}
		return nil
	case models.StateRejected:
		if s.AttemptedAuth {
			return &models.StatusMessage{Level: models.LevelError, Text: models.MsgInvalidToken}
		}
		// a token that went stale between cycles reverts quietly to the
		// sign-in prompt
		return &models.StatusMessage{Level: models.LevelWarning, Text: models.MsgPleaseAuthenticate}
	default:
		return &models.StatusMessage{Level: models.LevelWarning, Text: models.MsgPleaseAuthenticate}
	}
}
