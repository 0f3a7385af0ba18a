package parser

import "testing"

func TestParseTag_Scalar(t *testing.T) {
	kind, err := ParseTag("scalar")
	if err != nil {
		t.Fatalf("ParseTag() error: %v", err)
	}
	if kind != Scalar {
		t.Errorf("Expected Scalar, got %v", kind)
	}
}

func TestParseTag_Array(t *testing.T) {
	kind, err := ParseTag("array")
	if err != nil {
		t.Fatalf("ParseTag() error: %v", err)
	}
	if kind != Array {
		t.Errorf("Expected Array, got %v", kind)
	}
}

func TestParseTag_Empty(t *testing.T) {
	if _, err := ParseTag(""); err == nil {
		t.Error("Expected error for empty tag")
	}
}

func TestParseTag_InvalidKind(t *testing.T) {
	if _, err := ParseTag("dynamic"); err == nil {
		t.Error("Expected error for unknown kind")
	}
}

func TestParseTag_ExtraParams(t *testing.T) {
	if _, err := ParseTag("scalar,count=N"); err == nil {
		t.Error("Expected error for extra parameters")
	}
}

func TestMemberKind_String(t *testing.T) {
	if Scalar.String() != "scalar" {
		t.Errorf("Scalar.String() = %q", Scalar.String())
	}
	if Array.String() != "array" {
		t.Errorf("Array.String() = %q", Array.String())
	}
}
