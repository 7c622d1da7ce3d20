package rc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRC(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rc.lua")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFileMissingIsNotError(t *testing.T) {
	r := NewRuntime()
	defer r.Close()

	if err := r.RunFile(filepath.Join(t.TempDir(), "absent.lua")); err != nil {
		t.Errorf("RunFile(missing) error = %v", err)
	}
}

func TestAliases(t *testing.T) {
	r := NewRuntime()
	defer r.Close()

	path := writeRC(t, `
alias("ll", "ls -la")
alias("quit", "exit")
alias("", "ignored")
`)
	if err := r.RunFile(path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}

	aliases := r.Aliases()
	if len(aliases) != 2 {
		t.Fatalf("got %d aliases, want 2: %v", len(aliases), aliases)
	}
	if aliases[0].Name != "ll" || aliases[0].Expansion != "ls -la" {
		t.Errorf("aliases[0] = %+v", aliases[0])
	}
	if aliases[1].Name != "quit" || aliases[1].Expansion != "exit" {
		t.Errorf("aliases[1] = %+v", aliases[1])
	}
}

func TestPromptHook(t *testing.T) {
	r := NewRuntime()
	defer r.Close()

	path := writeRC(t, `
function prompt(cwd, ok)
    if ok then
        return cwd .. " $ "
    end
    return cwd .. " ! "
end
`)
	if err := r.RunFile(path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}

	if !r.HasPromptHook() {
		t.Fatal("HasPromptHook() = false, want true")
	}

	got, ok := r.Prompt("/tmp", true)
	if !ok || got != "/tmp $ " {
		t.Errorf("Prompt(ok) = %q, %v", got, ok)
	}

	got, ok = r.Prompt("/tmp", false)
	if !ok || got != "/tmp ! " {
		t.Errorf("Prompt(fail) = %q, %v", got, ok)
	}
}

func TestPromptHookAbsent(t *testing.T) {
	r := NewRuntime()
	defer r.Close()

	if r.HasPromptHook() {
		t.Error("HasPromptHook() on empty runtime")
	}
	if _, ok := r.Prompt("/", true); ok {
		t.Error("Prompt() should report no hook")
	}
}

func TestPromptHookErrorFallsBack(t *testing.T) {
	r := NewRuntime()
	defer r.Close()

	path := writeRC(t, `
function prompt(cwd, ok)
    error("boom")
end
`)
	if err := r.RunFile(path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}

	if _, ok := r.Prompt("/", true); ok {
		t.Error("Prompt() should report failure when the hook errors")
	}
}

func TestPromptHookNonStringFallsBack(t *testing.T) {
	r := NewRuntime()
	defer r.Close()

	path := writeRC(t, `
function prompt(cwd, ok)
    return 42
end
`)
	if err := r.RunFile(path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}

	if _, ok := r.Prompt("/", true); ok {
		t.Error("Prompt() should reject a non-string result")
	}
}

func TestSandboxWithholdsOSAndIO(t *testing.T) {
	r := NewRuntime()
	defer r.Close()

	path := writeRC(t, `
if os ~= nil or io ~= nil then
    error("os or io leaked into the sandbox")
end
if dofile ~= nil or loadfile ~= nil or load ~= nil then
    error("code loading leaked into the sandbox")
end
`)
	if err := r.RunFile(path); err != nil {
		t.Errorf("sandbox check failed: %v", err)
	}
}

func TestRunFileSyntaxError(t *testing.T) {
	r := NewRuntime()
	defer r.Close()

	path := writeRC(t, `alias("unclosed`)
	err := r.RunFile(path)
	if err == nil {
		t.Fatal("RunFile() of invalid Lua should fail")
	}
	if !strings.Contains(err.Error(), "rc file") {
		t.Errorf("error %q should mention the rc file", err)
	}
}
