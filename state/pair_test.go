package state

import (
	"reflect"
	"testing"
)

func TestMakeSortedPairInt(t *testing.T) {
	if !reflect.DeepEqual(MakeSortedPair(3, 1), Pair[int, int]{1, 3}) {
		t.Fatalf("expected {1 3}, got %v", MakeSortedPair(3, 1))
	}
	if !reflect.DeepEqual(MakeSortedPair(1, 3), Pair[int, int]{1, 3}) {
		t.Fatalf("expected {1 3}, got %v", MakeSortedPair(1, 3))
	}
}

func TestMakeSortedPairString(t *testing.T) {
	forward := MakeSortedPair("ada", "bob")
	backward := MakeSortedPair("bob", "ada")
	if !reflect.DeepEqual(forward, backward) {
		t.Fatalf("expected %v == %v", forward, backward)
	}
	if forward.V1 != "ada" || forward.V2 != "bob" {
		t.Fatalf("expected {ada bob}, got %v", forward)
	}
}
