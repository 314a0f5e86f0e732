package ruleset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestListDocuments(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sources", "accounts.yaml"), "sources: []\n")
	writeFile(t, filepath.Join(root, "sinks", "api", "thirdparty", "JAVA.YML"), "sinks: []\n")
	writeFile(t, filepath.Join(root, "policies", "gdpr.Yaml"), "policies: []\n")
	writeFile(t, filepath.Join(root, "README.md"), "not a rule document\n")
	writeFile(t, filepath.Join(root, "sources", "notes.txt"), "ignored\n")

	got, err := ListDocuments(root)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}

	want := []string{
		filepath.Join(root, "policies", "gdpr.Yaml"),
		filepath.Join(root, "sinks", "api", "thirdparty", "JAVA.YML"),
		filepath.Join(root, "sources", "accounts.yaml"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListDocuments = %v, want %v", got, want)
	}
}

func TestListDocuments_EmptyRoot(t *testing.T) {
	got, err := ListDocuments(t.TempDir())
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no documents, got %v", got)
	}
}

func TestListDocuments_MissingRoot(t *testing.T) {
	if _, err := ListDocuments(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Error("expected error for missing root, got nil")
	}
}

func TestListDocuments_RootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "rules.yaml")
	writeFile(t, file, "sources: []\n")

	if _, err := ListDocuments(file); err == nil {
		t.Error("expected error for non-directory root, got nil")
	}
}
