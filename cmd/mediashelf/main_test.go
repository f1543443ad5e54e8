package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q

[cache]
path = %q
`, filepath.Join(dir, "data"), filepath.Join(dir, "logs"), filepath.Join(dir, "cache.json"))

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "mediashelf") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("output does not mention target path: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := runCommand(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, err := runCommand(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCommand(t, "", "config", "validate", "--config", cfgPath)
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected validate output %q", out)
	}
}

func TestLookupRejectsUnknownKind(t *testing.T) {
	cfgPath := writeTestConfig(t)

	if _, err := runCommand(t, "", "lookup", "podcast", "upc", "1", "--config", cfgPath); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestItemsAddListShowRemove(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCommand(t, `{"title":"Dune","authors":["Frank Herbert"],"format":"Paperback"}`,
		"items", "add", "book", "--config", cfgPath)
	if err != nil {
		t.Fatalf("items add failed: %v", err)
	}
	if !strings.Contains(out, "Dune") {
		t.Fatalf("unexpected add output %q", out)
	}

	listOut, err := runCommand(t, "", "items", "list", "book", "--json", "--config", cfgPath)
	if err != nil {
		t.Fatalf("items list failed: %v", err)
	}
	var items []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(listOut), &items); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Dune" || items[0].ID == "" {
		t.Fatalf("unexpected listing %+v", items)
	}

	showOut, err := runCommand(t, "", "items", "show", "book", items[0].ID, "--json", "--config", cfgPath)
	if err != nil {
		t.Fatalf("items show failed: %v", err)
	}
	if !strings.Contains(showOut, "Frank Herbert") {
		t.Fatalf("unexpected show output %q", showOut)
	}

	if _, err := runCommand(t, "", "items", "remove", "book", items[0].ID, "--config", cfgPath); err != nil {
		t.Fatalf("items remove failed: %v", err)
	}
	if _, err := runCommand(t, "", "items", "show", "book", items[0].ID, "--config", cfgPath); err == nil {
		t.Fatal("expected error for removed item")
	}
}

func TestItemsAddRequiresTitle(t *testing.T) {
	cfgPath := writeTestConfig(t)

	if _, err := runCommand(t, `{}`, "items", "add", "book", "--config", cfgPath); err == nil {
		t.Fatal("expected error for item without title")
	}
}
