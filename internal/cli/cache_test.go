package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/socketgraph/pkg/cache"
)

func TestCachePathCommand(t *testing.T) {
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName)
	if got := strings.TrimSpace(out); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	cacheHome := t.TempDir()
	dir := filepath.Join(cacheHome, appName)
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()
	for _, key := range []string{"convert:pdf:a", "convert:png:b"} {
		if err := fc.Set(ctx, key, []byte("data"), time.Hour); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	if _, ok, _ := fc.Get(ctx, "convert:pdf:a"); ok {
		t.Error("entry survived cache clear")
	}
}

func TestCacheClearMissingDir(t *testing.T) {
	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Errorf("cache clear on a missing directory: %v", err)
	}
}
