package tokenize

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple", "ls -la", []string{"ls", "-la"}},
		{"interior runs of spaces", "echo   hello   world", []string{"echo", "hello", "world"}},
		{"double quoted span", `echo "hello world" there`, []string{"echo", "hello world", "there"}},
		{"single quoted span", "echo 'hello world' there", []string{"echo", "hello world", "there"}},
		{"empty", "", nil},
		{"whitespace only", "     ", nil},
		{"single word", "cd", []string{"cd"}},
		{"two words", "cd /tmp", []string{"cd", "/tmp"}},
		{"leading whitespace", "   ls", []string{"ls"}},
		{"trailing whitespace", "ls   ", []string{"ls"}},
		{"quote at start of line", `"spaced arg" tail`, []string{"spaced arg", "tail"}},
		{"nested other quote", `echo "it's fine"`, []string{"echo", "it's fine"}},
		{"unterminated quote", `echo "never closed`, []string{"echo", "never closed"}},
		{"empty quotes dropped", `echo "" x`, []string{"echo", "x"}},
		{"quote glued to word", `echo ab"cd ef"`, []string{"echo", "abcd ef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestSplitNeverEmitsEmptyTokens(t *testing.T) {
	lines := []string{
		"a  b", "  a", "a  ", `"" '' ""`, `a "" b`, "'x'  'y'",
	}
	for _, line := range lines {
		for _, tok := range Split(line) {
			if tok == "" {
				t.Errorf("Split(%q) produced an empty token", line)
			}
		}
	}
}
