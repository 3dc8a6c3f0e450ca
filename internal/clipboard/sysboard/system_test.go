package sysboard

import "testing"

func TestReadWrite(t *testing.T) {
	s := New()
	if !s.IsSupported() {
		t.Skip("no clipboard helper command available on this system")
	}

	if err := s.WriteText("test clipboard content"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	text, err := s.ReadText()
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if text != "test clipboard content" {
		t.Errorf("ReadText = %q, want %q", text, "test clipboard content")
	}
}

func TestMultilineContent(t *testing.T) {
	s := New()
	if !s.IsSupported() {
		t.Skip("no clipboard helper command available on this system")
	}

	content := "line one\nline two\nline three"
	if err := s.WriteText(content); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	text, err := s.ReadText()
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if text != content {
		t.Errorf("ReadText = %q, want %q", text, content)
	}
}
