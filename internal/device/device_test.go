package device

import "testing"

func TestCurrentIDStable(t *testing.T) {
	first := CurrentID()
	if first == "" {
		t.Fatal("CurrentID returned empty string")
	}
	if second := CurrentID(); second != first {
		t.Fatalf("CurrentID changed between calls: %q then %q", first, second)
	}
}

func TestHostnameNeverEmpty(t *testing.T) {
	if Hostname() == "" {
		t.Fatal("Hostname returned empty string")
	}
}
