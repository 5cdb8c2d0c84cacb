package explain

import "testing"

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := stripCodeFences(tc.in); got != tc.want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewAnthropicCallerFromEnvUnset(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if c := NewAnthropicCallerFromEnv(); c != nil {
		t.Fatal("expected nil caller without a key")
	}
}
