package logger

import "testing"

func TestGet(t *testing.T) {
	Init("test", "not-a-level")

	if Get() == nil {
		t.Fatal("expected a logger")
	}
	if Get() != Get() {
		t.Error("expected the same global logger")
	}
	if Named("savings") == nil {
		t.Error("expected a named logger")
	}
	Sync()
}
