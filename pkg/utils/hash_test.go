package utils

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("correct password must verify")
	}
	if CheckPassword(hash, "secret124") {
		t.Error("wrong password must not verify")
	}
}

func TestCheckPasswordBadHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "secret123") {
		t.Error("garbage hash must not verify")
	}
}
