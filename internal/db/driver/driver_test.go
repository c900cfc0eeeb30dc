package driver

import "testing"

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "memcached", Addrs: []string{"localhost:11211"}}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestOpen_NoAddrs(t *testing.T) {
	for _, d := range []string{Valkey, Redis, ""} {
		if _, err := Open(Config{Driver: d}); err == nil {
			t.Errorf("driver %q: expected error for empty addrs", d)
		}
	}
}
