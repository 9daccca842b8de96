package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContextPreservesInsertionOrder(t *testing.T) {
	c := NewContext()
	c.Set("b", 1)
	c.Set("a", 2)
	c.Set("z", 3)

	if diff := cmp.Diff([]string{"b", "a", "z"}, c.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestContextNeverRewrites(t *testing.T) {
	c := NewContext()
	c.Set("key", "first")
	c.Set("key", "second")

	v, ok := c.Get("key")
	if !ok || v != "first" {
		t.Fatalf("value = %v, want the first write to win", v)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}
