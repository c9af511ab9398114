package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	m "repkg.dev/repkg/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o640); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o750); err != nil {
		t.Fatalf("failed to mkdir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "Main.java"), "package main;\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "Child.java")
		writeTestFile(t, child, "package nested;\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file")
		}
	})

	t.Run("skips vcs and dependency directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()

		for _, skipped := range []string{".git", "vendor", "node_modules"} {
			dir := filepath.Join(root, skipped)
			mustMkdir(t, dir)
			writeTestFile(t, filepath.Join(dir, "Hidden.java"), "package hidden;\n")
		}

		writeTestFile(t, filepath.Join(root, "Visible.java"), "package visible;\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		for _, p := range visited {
			if filepath.Base(p) == "Hidden.java" {
				t.Fatalf("Walk() visited skipped directory content: %s", p)
			}
		}

		if !containsPath(visited, filepath.Join(root, "Visible.java")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})
}

func TestLocalSourceFSAdapter_CopyFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	src := filepath.Join(root, "src.txt")
	dst := filepath.Join(root, "dst.txt")

	writeTestFile(t, src, "hello")

	if err := os.Chmod(src, 0o755); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	modTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(src, modTime, modTime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if err := adapter.CopyFile(m.Path(src), m.Path(dst)); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}

	if string(data) != "hello" {
		t.Fatalf("destination content = %q", data)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat destination: %v", err)
	}

	if info.Mode().Perm() != 0o755 {
		t.Fatalf("destination mode = %v, want 0755", info.Mode().Perm())
	}

	if !info.ModTime().Equal(modTime) {
		t.Fatalf("destination mtime = %v, want %v", info.ModTime(), modTime)
	}
}

func TestLocalSourceFSAdapter_CopyFile_MissingSource(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()

	err := adapter.CopyFile(m.Path(filepath.Join(root, "absent")), m.Path(filepath.Join(root, "dst")))
	if err == nil {
		t.Fatal("CopyFile() expected error for missing source")
	}
}

func TestLocalSourceFSAdapter_RelPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	rel, err := adapter.RelPath("/a/b", "/a/b/c/d")
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if rel != m.Path(filepath.Join("c", "d")) {
		t.Fatalf("RelPath() = %q", rel)
	}
}

func TestLocalSourceFSAdapter_MkdirAll(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	dir := filepath.Join(root, "x", "y", "z")

	if err := adapter.MkdirAll(m.Path(dir)); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s, err = %v", dir, err)
	}
}
