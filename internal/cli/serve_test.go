package cli

import "testing"

func TestEnvOr(t *testing.T) {
	t.Setenv(addrEnvVar, "")

	if got := envOr(addrEnvVar, ":8080"); got != ":8080" {
		t.Errorf("envOr() = %q, want fallback %q", got, ":8080")
	}

	t.Setenv(addrEnvVar, "127.0.0.1:9999")
	if got := envOr(addrEnvVar, ":8080"); got != "127.0.0.1:9999" {
		t.Errorf("envOr() = %q, want %q", got, "127.0.0.1:9999")
	}
}
