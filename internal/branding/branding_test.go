package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "simpkg" {
		t.Errorf("CLIName() = %q, want simpkg", got)
	}
	if got := HomeDir(); got != ".simpkg" {
		t.Errorf("HomeDir() = %q, want .simpkg", got)
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "SIMPKG_HOME" {
		t.Errorf("EnvVar(home) = %q, want SIMPKG_HOME", got)
	}
	if got := EnvVar("LOG_LEVEL"); got != "SIMPKG_LOG_LEVEL" {
		t.Errorf("EnvVar(LOG_LEVEL) = %q, want SIMPKG_LOG_LEVEL", got)
	}
	if got := EnvVar("log-level"); got != "SIMPKG_LOG_LEVEL" {
		t.Errorf("EnvVar(log-level) = %q, want SIMPKG_LOG_LEVEL", got)
	}
}
