package utils

import "testing"

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(10)
	b := GenerateRandomString(10)
	if len(a) != 10 || len(b) != 10 {
		t.Fatalf("wrong length: %q %q", a, b)
	}
	if a == b {
		t.Fatal("two random strings collided")
	}
}

func TestContains(t *testing.T) {
	list := []string{"confirmed", "completed", "cancelled"}
	if !Contains(list, "completed") {
		t.Fatal("exact match failed")
	}
	if Contains(list, "Completed") {
		t.Fatal("Contains must be case sensitive")
	}
	if !ContainsFold(list, "Completed") {
		t.Fatal("ContainsFold must be case insensitive")
	}
	if ContainsFold(list, "paused") {
		t.Fatal("missing value reported present")
	}
}
