package utils

import "testing"

func TestHashPasswordAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret!", 4) // min cost keeps the test fast
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if !VerifyPassword(hash, "s3cret!") {
		t.Error("VerifyPassword() = false for correct password")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("VerifyPassword() = true for wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	h2, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical; salt missing")
	}
}
