package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	svc := NewService("test-secret")

	token, err := svc.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	userID, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("ParseToken() = %d, want 42", userID)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewService("secret-a").GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := NewService("secret-b").ParseToken(token); err == nil {
		t.Error("ParseToken() accepted a token signed with another secret")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := NewService("secret").ParseToken("not.a.token"); err == nil {
		t.Error("ParseToken() accepted garbage input")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter22" {
		t.Error("HashPassword() returned the plaintext")
	}
	if !CheckPassword("hunter22", hash) {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword("wrong", hash) {
		t.Error("CheckPassword() accepted a wrong password")
	}
}
