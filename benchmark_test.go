package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Compile("*.log", "/repo"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRuleSetEvaluate(b *testing.B) {
	rs := NewRuleSet("/repo", []string{"build/", "*.tmp", "!keep.tmp", "/out", "docs/**"})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rs.Evaluate("src/deep/nested/file.tmp", false)
	}
}

func BenchmarkRepositoryIsIgnored(b *testing.B) {
	root := b.TempDir()
	mustWrite(b, filepath.Join(root, ".gitignore"), "*.no\nbuild/\n")
	mustWrite(b, filepath.Join(root, "sub", ".gitignore"), "!keep.no\n")

	repo, err := NewRepository(root)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		repo.IsIgnored("sub/keep.no", false)
	}
}

func mustWrite(b *testing.B, path, content string) {
	b.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		b.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		b.Fatal(err)
	}
}
