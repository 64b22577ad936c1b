package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    5,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	})

	for i := 0; i < 5; i++ {
		if !rl.Allow("test-ip") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_BlocksAfterMax(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    3,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	})

	for i := 0; i < 3; i++ {
		rl.Allow("test-ip")
	}

	if rl.Allow("test-ip") {
		t.Fatal("4th request should be blocked")
	}
}

func TestRateLimiter_DifferentKeysIndependent(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    2,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	})

	rl.Allow("ip-a")
	rl.Allow("ip-a")

	// ip-a is exhausted
	if rl.Allow("ip-a") {
		t.Fatal("ip-a should be blocked")
	}

	// ip-b should still be allowed
	if !rl.Allow("ip-b") {
		t.Fatal("ip-b should be allowed (independent key)")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    2,
		Window: 50 * time.Millisecond,
		KeyFn:  KeyByIP,
	})

	rl.Allow("test")
	rl.Allow("test")

	if rl.Allow("test") {
		t.Fatal("should be blocked within window")
	}

	// Wait for window to expire
	time.Sleep(60 * time.Millisecond)

	if !rl.Allow("test") {
		t.Fatal("should be allowed after window reset")
	}
}

func TestRateLimiter_ReviewSubmitConfig(t *testing.T) {
	rl := NewReviewSubmitRateLimiter()
	for i := 0; i < 5; i++ {
		if !rl.Allow("ip:abc123") {
			t.Fatalf("review submit request %d should be allowed (max 5)", i+1)
		}
	}
	if rl.Allow("ip:abc123") {
		t.Fatal("6th review submit should be blocked")
	}
}

func TestRateLimiter_ImportConfig(t *testing.T) {
	rl := NewImportRateLimiter()
	for i := 0; i < 10; i++ {
		if !rl.Allow("ip:abc123") {
			t.Fatalf("import request %d should be allowed (max 10)", i+1)
		}
	}
	if rl.Allow("ip:abc123") {
		t.Fatal("11th import request should be blocked")
	}
}

func TestRateLimiter_ExportConfig(t *testing.T) {
	rl := NewExportRateLimiter()
	for i := 0; i < 10; i++ {
		if !rl.Allow("ip:127.0.0.1") {
			t.Fatalf("export request %d should be allowed (max 10)", i+1)
		}
	}
	if rl.Allow("ip:127.0.0.1") {
		t.Fatal("11th export request should be blocked (max 10/hour)")
	}
}

func TestRateLimiter_WindowOpsConfig(t *testing.T) {
	rl := NewWindowOpsRateLimiter()
	for i := 0; i < 120; i++ {
		if !rl.Allow("session:abc") {
			t.Fatalf("window op %d should be allowed (max 120)", i+1)
		}
	}
	if rl.Allow("session:abc") {
		t.Fatal("121st window op should be blocked")
	}
}
