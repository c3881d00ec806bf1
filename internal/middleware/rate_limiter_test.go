package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_UserLimit(t *testing.T) {
	rl := NewRateLimiter(3, 100, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.CheckUserLimit(1) {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}

	if rl.CheckUserLimit(1) {
		t.Error("request over the limit was allowed")
	}

	// A different user has its own window.
	if !rl.CheckUserLimit(2) {
		t.Error("unrelated user was limited")
	}
}

func TestRateLimiter_IPLimit(t *testing.T) {
	rl := NewRateLimiter(100, 2, time.Minute)

	if !rl.CheckIPLimit("10.0.0.1") {
		t.Fatal("first request limited")
	}
	if !rl.CheckIPLimit("10.0.0.1") {
		t.Fatal("second request limited")
	}
	if rl.CheckIPLimit("10.0.0.1") {
		t.Error("request over the limit was allowed")
	}

	if !rl.CheckIPLimit("10.0.0.2") {
		t.Error("unrelated IP was limited")
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 1, 10*time.Millisecond)

	if !rl.CheckUserLimit(1) {
		t.Fatal("first request limited")
	}
	if rl.CheckUserLimit(1) {
		t.Fatal("second request allowed within window")
	}

	time.Sleep(15 * time.Millisecond)

	if !rl.CheckUserLimit(1) {
		t.Error("request after window reset was limited")
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)

	rl.CheckUserLimit(1)
	rl.CheckIPLimit("10.0.0.1")

	rl.Reset()

	if !rl.CheckUserLimit(1) {
		t.Error("user still limited after Reset()")
	}
	if !rl.CheckIPLimit("10.0.0.1") {
		t.Error("IP still limited after Reset()")
	}
}
