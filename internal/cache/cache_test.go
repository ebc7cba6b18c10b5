package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	k1 := Key("seo", "example.com")
	k2 := Key("seo", "example.com")
	k3 := Key("content", "example.com")

	if k1 != k2 {
		t.Error("Key should be deterministic")
	}
	if k1 == k3 {
		t.Error("different kinds should produce different keys")
	}
	if !strings.HasPrefix(k1, "domainhunter:v1:seo:") {
		t.Errorf("unexpected key prefix: %s", k1)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Get("k")
	if !ok || string(got) != "v" {
		t.Fatalf("Get = %q, %v; want v, true", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after Delete")
	}

	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)
	_ = c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected entry to expire")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	key := Key("seo", "example.com")

	if err := c.Set(key, []byte(`{"a":1}`), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Get(key)
	if !ok || string(got) != `{"a":1}` {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	// A fresh instance over the same directory sees the entry.
	if _, ok := NewDiskCache(dir, time.Hour).Get(key); !ok {
		t.Error("entry not persisted to disk")
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Delete(key); err != nil {
		t.Errorf("Delete of missing key should succeed, got %v", err)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	_ = c.Set("k", []byte("v"), time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected expired disk entry to miss")
	}
}

func TestLayeredCache_Promotes(t *testing.T) {
	dir := t.TempDir()
	disk := NewDiskCache(dir, time.Hour)
	_ = disk.Set("k", []byte("v"), 0)

	c := NewLayeredCache(time.Minute, dir, time.Hour)
	got, ok := c.Get("k")
	if !ok || string(got) != "v" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
	if _, ok := c.fast.Get("k"); !ok {
		t.Error("disk hit was not promoted to memory")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after Clear")
	}
}

func TestJSONHelpers(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	type payload struct {
		Score int `json:"score"`
	}

	if err := SetJSON(c, "p", payload{Score: 42}, 0); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	var got payload
	if !GetJSON(c, "p", &got) || got.Score != 42 {
		t.Errorf("GetJSON = %+v", got)
	}

	_ = c.Set("bad", []byte("not json"), 0)
	if GetJSON(c, "bad", &got) {
		t.Error("GetJSON should report false for undecodable data")
	}
}
