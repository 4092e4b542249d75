package ratelimit

import "testing"

func TestAllowWithinCapacity(t *testing.T) {
	l := New(3, 1)
	for i := 0; i < 3; i++ {
		if !l.Allow() {
			t.Fatalf("expected allow at call %d", i)
		}
	}
	if l.Allow() {
		t.Fatal("expected deny once bucket is drained")
	}
}

func TestZeroRateDisablesLimiting(t *testing.T) {
	l := New(0, 0)
	for i := 0; i < 100; i++ {
		if !l.Allow() {
			t.Fatal("expected unlimited allow with zero refill rate")
		}
	}
}

func TestNilLimiterAllows(t *testing.T) {
	var l *Limiter
	if !l.Allow() {
		t.Fatal("nil limiter must allow")
	}
}
