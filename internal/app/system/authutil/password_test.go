package authutil

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Error("hash should not equal the plaintext")
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("CheckPassword() should accept the original password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("CheckPassword() should reject a wrong password")
	}
	if CheckPassword("", "anything") {
		t.Error("CheckPassword() should reject an empty hash")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); err != ErrPasswordTooShort {
		t.Errorf("ValidatePassword(short) = %v, want ErrPasswordTooShort", err)
	}
	long := make([]byte, MaxPasswordLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidatePassword(string(long)); err != ErrPasswordTooLong {
		t.Errorf("ValidatePassword(long) = %v, want ErrPasswordTooLong", err)
	}
	if err := ValidatePassword("long-enough-password"); err != nil {
		t.Errorf("ValidatePassword(valid) = %v, want nil", err)
	}
}
