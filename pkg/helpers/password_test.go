package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals the plaintext")
	}
	if !CompareHashAndPassword(hash, "secret123") {
		t.Error("correct password does not verify")
	}
	if CompareHashAndPassword(hash, "secret124") {
		t.Error("wrong password verifies")
	}
	if CompareHashAndPassword("not-a-hash", "secret123") {
		t.Error("garbage hash verifies")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical; salting broken")
	}
}
