package webhook

import "testing"

func TestVerifySignatureRoundTrip(t *testing.T) {
	body := []byte(`{"event":"post_status","cafe_id":1,"post_id":2,"status":"posted"}`)
	sig := Sign("secret", body)

	if !VerifySignature("secret", body, sig) {
		t.Error("valid signature rejected")
	}
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	body := []byte(`{"event":"post_status"}`)
	sig := Sign("secret", body)

	if VerifySignature("other-secret", body, sig) {
		t.Error("signature from a different secret accepted")
	}
}

func TestVerifySignatureTamperedBody(t *testing.T) {
	body := []byte(`{"event":"post_status","status":"posted"}`)
	sig := Sign("secret", body)

	tampered := []byte(`{"event":"post_status","status":"failed"}`)
	if VerifySignature("secret", tampered, sig) {
		t.Error("tampered body accepted")
	}
}

func TestVerifySignatureEmpty(t *testing.T) {
	if VerifySignature("secret", []byte("payload"), "") {
		t.Error("empty signature accepted")
	}
}
