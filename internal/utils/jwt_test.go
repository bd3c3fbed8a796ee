package utils

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()
	token, err := GenerateJWT("64f1b2c3d4e5f60718293a4b", "secret", 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != "64f1b2c3d4e5f60718293a4b" {
		t.Errorf("wrong user id: %s", userID)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	t.Parallel()
	token, err := GenerateJWT("64f1b2c3d4e5f60718293a4b", "secret", 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseJWT(token, "other"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestJWTGarbage(t *testing.T) {
	t.Parallel()
	if _, err := ParseJWT("not.a.token", "secret"); err == nil {
		t.Error("expected error for garbage token")
	}
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword("hunter2", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
