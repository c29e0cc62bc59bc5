package badger

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/dep2p/go-hive/internal/core/storage/engine"
)

// testEngine 创建测试用引擎
func testEngine(t *testing.T) *Engine {
	t.Helper()

	cfg := engine.DefaultConfig(filepath.Join(t.TempDir(), "test.db"))
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	t.Cleanup(func() {
		if err := e.Close(); err != nil {
			t.Errorf("failed to close engine: %v", err)
		}
	})

	return e
}

// ============= 基础 CRUD 测试 =============

func TestEngine_PutGet(t *testing.T) {
	e := testEngine(t)

	key := []byte("test-key")
	value := []byte("test-value")

	if err := e.Put(key, value); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := e.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get returned %q, want %q", got, value)
	}
}

func TestEngine_GetNotFound(t *testing.T) {
	e := testEngine(t)

	_, err := e.Get([]byte("nonexistent"))
	if !engine.IsNotFound(err) {
		t.Errorf("Get returned error %v, want ErrNotFound", err)
	}

	ok, err := e.Has([]byte("nonexistent"))
	if err != nil || ok {
		t.Errorf("Has returned (%v, %v), want (false, nil)", ok, err)
	}
}

func TestEngine_Delete(t *testing.T) {
	e := testEngine(t)

	key := []byte("delete-key")
	if err := e.Put(key, []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := e.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := e.Get(key); !engine.IsNotFound(err) {
		t.Errorf("Get after Delete returned %v, want ErrNotFound", err)
	}
}

func TestEngine_EmptyKey(t *testing.T) {
	e := testEngine(t)

	if err := e.Put(nil, []byte("v")); err != engine.ErrEmptyKey {
		t.Errorf("Put returned %v, want ErrEmptyKey", err)
	}
}

func TestEngine_Closed(t *testing.T) {
	cfg := engine.DefaultConfig(filepath.Join(t.TempDir(), "closed.db"))
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := e.Get([]byte("k")); !errors.Is(err, engine.ErrClosed) {
		t.Errorf("Get after Close returned %v, want ErrClosed", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
}

// ============= 批量与迭代测试 =============

func TestEngine_Batch(t *testing.T) {
	e := testEngine(t)

	b := e.NewBatch()
	for i := 0; i < 10; i++ {
		b.Put([]byte(fmt.Sprintf("batch/%02d", i)), []byte{byte(i)})
	}
	b.Delete([]byte("batch/03"))
	if b.Size() != 11 {
		t.Errorf("Size = %d, want 11", b.Size())
	}
	if err := b.Write(); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := e.Get([]byte("batch/07"))
	if err != nil || !bytes.Equal(got, []byte{7}) {
		t.Errorf("Get batch/07 = (%v, %v)", got, err)
	}
	if ok, _ := e.Has([]byte("batch/03")); ok {
		t.Error("batch/03 should be deleted")
	}
}

func TestEngine_PrefixIterator(t *testing.T) {
	e := testEngine(t)

	for _, k := range []string{"a/1", "a/2", "a/3", "b/1", "a0"} {
		if err := e.Put([]byte(k), []byte(k)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	collect := func(reverse bool) []string {
		it := e.NewPrefixIterator([]byte("a/"), reverse)
		defer it.Close()

		var keys []string
		for it.Next() {
			keys = append(keys, string(it.Key()))
		}
		if err := it.Error(); err != nil {
			t.Fatalf("iterator error: %v", err)
		}
		return keys
	}

	forward := collect(false)
	if fmt.Sprint(forward) != "[a/1 a/2 a/3]" {
		t.Errorf("forward = %v", forward)
	}

	// "a0" 恰好是 "a/" 的上界
	reverse := collect(true)
	if fmt.Sprint(reverse) != "[a/3 a/2 a/1]" {
		t.Errorf("reverse = %v", reverse)
	}
}

func TestEngine_InMemory(t *testing.T) {
	cfg := engine.DefaultConfig("")
	cfg.InMemory = true

	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer e.Close()

	if err := e.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := e.Put([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
}

func TestUpperBound(t *testing.T) {
	tests := []struct {
		in   []byte
		want []byte
	}{
		{[]byte("a/"), []byte("a0")},
		{[]byte{0x01, 0xff}, []byte{0x02}},
		{[]byte{0xff}, []byte{0xff, 0xff}},
	}
	for _, tt := range tests {
		if got := upperBound(tt.in); !bytes.Equal(got, tt.want) {
			t.Errorf("upperBound(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
