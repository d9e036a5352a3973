package utils

import (
	"testing"
)

func TestDeref(t *testing.T) {
	t.Run("Deref: nil の場合はゼロ値を返すのだ", func(t *testing.T) {
		if got := Deref[string](nil); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
		if got := Deref[int64](nil); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("Deref: 値がある場合はその値を返すのだ", func(t *testing.T) {
		if got := Deref(Ptr("https://cdn.example.com/a.jpg")); got != "https://cdn.example.com/a.jpg" {
			t.Errorf("unexpected value: %q", got)
		}
	})
}
