package textutil

import (
	"reflect"
	"testing"
)

func TestDistinctSortedDedupesAndSorts(t *testing.T) {
	got := DistinctSorted([]string{"Paperback", "Hardcover", "Paperback", "eBook", "Hardcover"})
	want := []string{"Hardcover", "Paperback", "eBook"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestDistinctSortedDropsEmptyValues(t *testing.T) {
	got := DistinctSorted([]string{"Hardcover", "", "   ", "Paperback"})
	want := []string{"Hardcover", "Paperback"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestDistinctSortedTrimsBeforeComparing(t *testing.T) {
	got := DistinctSorted([]string{" DVD ", "DVD", "dvd"})
	want := []string{"DVD", "dvd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestDistinctSortedLeavesInputUntouched(t *testing.T) {
	input := []string{"b", "a"}
	DistinctSorted(input)
	if input[0] != "b" || input[1] != "a" {
		t.Fatalf("input mutated: %v", input)
	}
}
