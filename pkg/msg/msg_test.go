package msg

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const catalogue = `
observation:
  deleted: "Weather data for {0} has been deleted."
  mixed: "{0} took {1} and failed: {2}"
`

// TestGetMessage verifies placeholder substitution and the missing key fallback.
func TestGetMessage(t *testing.T) {
	if err := Load(strings.NewReader(catalogue)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{
			name: "single placeholder",
			key:  "observation.deleted",
			args: []interface{}{"Pune"},
			want: "Weather data for Pune has been deleted.",
		},
		{
			name: "stringer and error arguments",
			key:  "observation.mixed",
			args: []interface{}{3, 1500 * time.Millisecond, errors.New("boom")},
			want: "3 took 1.5s and failed: boom",
		},
		{
			name: "missing key",
			key:  "observation.unknown",
			want: "Message not found: observation.unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetMessage(tc.key, tc.args...); got != tc.want {
				t.Fatalf("GetMessage(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

// TestGetMessage_StructArgument verifies that non primitive arguments are rendered as JSON.
func TestGetMessage_StructArgument(t *testing.T) {
	if err := Load(strings.NewReader("json: \"payload {0}\"")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := GetMessage("json", map[string]int{"days": 1})
	if got != `payload {"days":1}` {
		t.Fatalf("GetMessage = %q", got)
	}
}
