package auth

import (
	"testing"
	"time"

	"RiskBoard/internal/domain/models"
)

type fakeValidator struct {
	valid bool
}

func (f fakeValidator) Validate(string) Validation {
	return Validation{Valid: f.valid}
}

func TestSubmitValidToken(t *testing.T) {
	s := models.NewSession()
	ev := &models.AuthEvent{Token: "tok"}

	s, msg := Transition(s, ev, fakeValidator{valid: true})

	if !s.Authenticated {
		t.Fatal("expected authenticated session")
	}
	if s.State != models.StateAuthenticated {
		t.Fatalf("expected authenticated state, got %s", s.State)
	}
	if msg == nil || msg.Text != models.MsgAuthenticated || msg.Level != models.LevelSuccess {
		t.Fatalf("expected success message, got %+v", msg)
	}
	if s.AttemptedAuth {
		t.Fatal("attempt flag must reset at end of cycle")
	}
}

func TestSubmitInvalidToken(t *testing.T) {
	s := models.NewSession()
	ev := &models.AuthEvent{Token: "bad"}

	s, msg := Transition(s, ev, fakeValidator{valid: false})

	if s.Authenticated {
		t.Fatal("expected unauthenticated session")
	}
	if s.Token != "" {
		t.Fatal("rejected token must be cleared")
	}
	if msg == nil || msg.Text != models.MsgInvalidToken || msg.Level != models.LevelError {
		t.Fatalf("expected invalid token message, got %+v", msg)
	}
	if s.State != models.StateUnauthenticated {
		t.Fatalf("expected reset to unauthenticated for next cycle, got %s", s.State)
	}
}

func TestRenderWithoutToken(t *testing.T) {
	s := models.NewSession()

	s, msg := Transition(s, nil, fakeValidator{valid: true})

	if s.Authenticated {
		t.Fatal("expected unauthenticated session")
	}
	if msg == nil || msg.Text != models.MsgPleaseAuthenticate || msg.Level != models.LevelWarning {
		t.Fatalf("expected authenticate prompt, got %+v", msg)
	}
}

func TestAuthenticatedRenderIsSilent(t *testing.T) {
	s := models.NewSession()
	s, _ = Transition(s, &models.AuthEvent{Token: "tok"}, fakeValidator{valid: true})

	// next cycle, no user action
	s, msg := Transition(s, nil, fakeValidator{valid: true})

	if !s.Authenticated {
		t.Fatal("expected session to stay authenticated")
	}
	if msg != nil {
		t.Fatalf("expected silent render, got %+v", msg)
	}
}

func TestTokenGoesStaleBetweenCycles(t *testing.T) {
	s := models.NewSession()
	s, _ = Transition(s, &models.AuthEvent{Token: "tok"}, fakeValidator{valid: true})

	// token expired since the last cycle; no user action this cycle
	s, msg := Transition(s, nil, fakeValidator{valid: false})

	if s.Authenticated {
		t.Fatal("expected session to revert")
	}
	if s.Token != "" {
		t.Fatal("stale token must be cleared")
	}
	if msg == nil || msg.Text != models.MsgPleaseAuthenticate {
		t.Fatalf("expected quiet revert to prompt, got %+v", msg)
	}
}

func TestRejectedThenResubmit(t *testing.T) {
	s := models.NewSession()
	s, _ = Transition(s, &models.AuthEvent{Token: "bad"}, fakeValidator{valid: false})

	s, msg := Transition(s, &models.AuthEvent{Token: "good"}, fakeValidator{valid: true})

	if !s.Authenticated {
		t.Fatal("expected re-entry with a good token to authenticate")
	}
	if msg == nil || msg.Text != models.MsgAuthenticated {
		t.Fatalf("expected success message, got %+v", msg)
	}
}

func TestTransitionWithRealCodec(t *testing.T) {
	codec := NewCodec("integration-secret")
	token, err := codec.Issue(time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	s := models.NewSession()
	s, msg := Transition(s, &models.AuthEvent{Token: token}, codec)

	if !s.Authenticated {
		t.Fatal("expected issued token to authenticate")
	}
	if msg == nil || msg.Level != models.LevelSuccess {
		t.Fatalf("expected success message, got %+v", msg)
	}
}
