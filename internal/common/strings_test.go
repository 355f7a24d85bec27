// internal/common/strings_test.go
package common

import (
	"reflect"
	"testing"
)

func TestUnique(t *testing.T) {
	in := []string{" a.tsv", "b.tsv", "a.tsv ", "", "  ", "B.tsv", "b.tsv"}
	want := []string{"a.tsv", "b.tsv", "B.tsv"}
	if got := Unique(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("Unique(%v) = %v, want %v", in, got, want)
	}
}

func TestUnique_Empty(t *testing.T) {
	if got := Unique(nil); len(got) != 0 {
		t.Fatalf("Unique(nil) = %v", got)
	}
}
