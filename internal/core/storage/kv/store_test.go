package kv

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/dep2p/go-hive/internal/core/storage/engine"
	"github.com/dep2p/go-hive/internal/core/storage/engine/badger"
)

// testStore 创建测试用 Store
func testStore(t *testing.T, prefix string) (*Store, engine.Engine) {
	t.Helper()

	eng, err := badger.New(engine.DefaultConfig(filepath.Join(t.TempDir(), "test.db")))
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	t.Cleanup(func() {
		if err := eng.Close(); err != nil {
			t.Errorf("failed to close engine: %v", err)
		}
	})

	return New(eng, []byte(prefix)), eng
}

func TestStore_PrefixIsolation(t *testing.T) {
	s, eng := testStore(t, "test/")

	if err := s.Put([]byte("key1"), []byte("value1")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	raw, err := eng.Get([]byte("test/key1"))
	if err != nil || !bytes.Equal(raw, []byte("value1")) {
		t.Errorf("raw Get = (%q, %v)", raw, err)
	}

	other := New(eng, []byte("other/"))
	if ok, _ := other.Has([]byte("key1")); ok {
		t.Error("key leaked into another namespace")
	}
}

func TestStore_ScanAndDelete(t *testing.T) {
	s, _ := testStore(t, "p/")
	sub := s.SubStore([]byte("cell/"))

	for _, k := range []string{"1", "2", "3"} {
		if err := sub.Put([]byte(k), []byte(k)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	var last []byte
	err := sub.Scan(nil, true, func(key, _ []byte) bool {
		last = key
		return false
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if string(last) != "3" {
		t.Errorf("first reverse key = %q, want 3", last)
	}

	keys, err := sub.Keys(nil)
	if err != nil || len(keys) != 3 {
		t.Fatalf("Keys = (%v, %v)", keys, err)
	}
	if err := sub.DeleteKeys(keys[:2]); err != nil {
		t.Fatalf("DeleteKeys failed: %v", err)
	}

	keys, _ = sub.Keys(nil)
	if len(keys) != 1 || string(keys[0]) != "3" {
		t.Errorf("remaining keys = %q", keys)
	}
}
