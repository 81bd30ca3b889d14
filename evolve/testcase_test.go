// ABOUTME: Tests for test-case argument parsing
// ABOUTME: Colon splitting, empty sides, and size caps

package evolve

import (
	"strings"
	"testing"
)

func TestParseTestCase(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		input   string
		output  string
		wantErr bool
	}{
		{
			name:   "output only",
			arg:    "Hello",
			output: "Hello",
		},
		{
			name:   "input and output",
			arg:    "0:false",
			input:  "0",
			output: "false",
		},
		{
			name:   "empty output",
			arg:    "",
			output: "",
		},
		{
			name:   "empty input with colon",
			arg:    ":abc",
			input:  "",
			output: "abc",
		},
		{
			name:   "only first colon splits",
			arg:    "a:b:c",
			input:  "a",
			output: "b:c",
		},
		{
			name:   "input at cap",
			arg:    strings.Repeat("x", 128) + ":y",
			input:  strings.Repeat("x", 128),
			output: "y",
		},
		{
			name:    "input over cap",
			arg:     strings.Repeat("x", 129) + ":y",
			wantErr: true,
		},
		{
			name:    "output over cap",
			arg:     strings.Repeat("y", 129),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := ParseTestCase(tt.arg)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseTestCase failed: %v", err)
			}

			if string(tc.Input) != tt.input {
				t.Errorf("Input = %q, want %q", tc.Input, tt.input)
			}

			if string(tc.Output) != tt.output {
				t.Errorf("Output = %q, want %q", tc.Output, tt.output)
			}
		})
	}
}

func TestParseTestCasesCap(t *testing.T) {
	args := make([]string, MaxTestcases+1)
	for i := range args {
		args[i] = "x"
	}

	if _, err := ParseTestCases(args); err == nil {
		t.Error("Expected error for too many test cases")
	}

	if _, err := ParseTestCases(args[:MaxTestcases]); err != nil {
		t.Errorf("ParseTestCases at cap failed: %v", err)
	}
}
