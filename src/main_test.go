package main

import "testing"

func TestParseDegrees(t *testing.T) {
	degrees, err := parseDegrees(" 1, 3,5,,8 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []int{1, 3, 5, 8}
	if len(degrees) != len(expected) {
		t.Fatalf("expected %v, but got: %v", expected, degrees)
	}
	for i := range expected {
		if degrees[i] != expected[i] {
			t.Errorf("expected %v, but got: %v", expected, degrees)
		}
	}
	if _, err := parseDegrees("1,x"); err == nil {
		t.Error("expected error for non-numeric degree")
	}
}
