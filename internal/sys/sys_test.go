package sys

import (
	"os"
	"testing"
)

func TestEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   string
		want  string
	}{
		{
			name:  "EnvSet",
			value: "testValue",
			def:   "fallback",
			want:  "testValue",
		},
		{
			name:  "EnvNotSet",
			value: "",
			def:   "fallback",
			want:  "fallback",
		},
		{
			name:  "EnvOne",
			value: "1",
			def:   "",
			want:  "1",
		},
	}

	for _, tt := range tests {
		if tt.value != "" {
			t.Setenv("TEST_KEY", tt.value)
		} else {
			os.Unsetenv("TEST_KEY")
		}

		got := Env("TEST_KEY", tt.def)

		os.Unsetenv("TEST_KEY")

		if got != tt.want {
			t.Errorf("%s: got: %v, expected: %s", tt.name, got, tt.want)
		}
	}
}

func TestBinExists(t *testing.T) {
	t.Parallel()
	tests := []struct {
		command string
		exists  bool
	}{
		{
			command: "cat",
			exists:  true,
		},
		{
			command: "uname",
			exists:  true,
		},
		{
			command: "dotnotexists",
			exists:  false,
		},
	}

	for _, tt := range tests {
		got := BinExists(tt.command)
		if got != tt.exists {
			t.Errorf("%s: got: %v, expected: %v", tt.command, got, tt.exists)
		}
	}
}
