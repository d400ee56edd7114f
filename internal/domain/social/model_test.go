package social

import "testing"

func TestPostTransitions(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusPending, StatusReady},
		{StatusReady, StatusScheduled},
		{StatusScheduled, StatusPosted},
		{StatusScheduled, StatusFailed},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{StatusPending, StatusScheduled},
		{StatusPending, StatusPosted},
		{StatusReady, StatusPosted},
		{StatusPosted, StatusScheduled},
		{StatusFailed, StatusScheduled},
		{StatusPosted, StatusFailed},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestValidPlatform(t *testing.T) {
	for _, p := range []string{PlatformInstagram, PlatformFacebook, PlatformTwitter} {
		if !ValidPlatform(p) {
			t.Errorf("expected %s to be valid", p)
		}
	}
	if ValidPlatform("tiktok") {
		t.Error("tiktok is not a posting platform")
	}
	if ValidPlatform("") {
		t.Error("empty platform must be invalid")
	}
}
