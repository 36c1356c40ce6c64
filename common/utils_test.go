package common

import "testing"

func TestCoalesce(t *testing.T) {
	if have := Coalesce("", "title", "other"); have != "title" {
		t.Fatalf("have %q\nwant %q", have, "title")
	}
	if have := Coalesce(0, 0); have != 0 {
		t.Fatalf("have %d\nwant 0", have)
	}
	if have := Coalesce[int](); have != 0 {
		t.Fatalf("empty\nhave %d\nwant 0", have)
	}
}
