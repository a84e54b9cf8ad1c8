package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("ASTROID_TEST_KEY", "value")
	if got := GetEnv("ASTROID_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("set key = %q, want value", got)
	}
	if got := GetEnv("ASTROID_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("missing key = %q, want fallback", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("ASTROID_TEST_BOOL", "true")
	if !GetEnvBool("ASTROID_TEST_BOOL", false) {
		t.Error("true not parsed")
	}

	t.Setenv("ASTROID_TEST_BOOL", "0")
	if GetEnvBool("ASTROID_TEST_BOOL", true) {
		t.Error("0 not parsed as false")
	}

	t.Setenv("ASTROID_TEST_BOOL", "nope")
	if !GetEnvBool("ASTROID_TEST_BOOL", true) {
		t.Error("unparseable value should fall back")
	}
	if GetEnvBool("ASTROID_TEST_BOOL_MISSING", false) {
		t.Error("missing key should fall back")
	}
}
