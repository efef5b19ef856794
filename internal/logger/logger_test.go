package logger

import "testing"

func TestInit_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			l := New()
			if err := l.Init(level); err != nil {
				t.Fatalf("Init(%q) returned error: %v", level, err)
			}
			if l.Log == nil {
				t.Fatalf("Init(%q) left Log nil", level)
			}
		})
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	l := New()
	if err := l.Init("loud"); err == nil {
		t.Fatal("Init with unknown level did not return error")
	}
}
