package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Reference sequences produced by java.util.Random.
func TestJavaRandomMatchesJava(t *testing.T) {
	tests := []struct {
		seed  int64
		bound int
		want  []int
	}{
		{44, 10, []int{4, 3, 2, 5, 8, 0, 8, 5, 2, 0, 8, 3}},
		{42, 10, []int{0, 3, 8, 4, 0, 5, 5, 8, 9, 3}},
		{0, 100, []int{60, 48, 29, 47, 15}},
		{-7, 1000, []int{662, 297, 590, 707, 478}},
		{44, 16, []int{11, 10, 11, 13, 11, 4}},
		{44, 1<<31 - 1, []int{1561276884, 1436362843, 1504290512}},
	}
	for _, tt := range tests {
		r := newJavaRandom(tt.seed)
		got := make([]int, len(tt.want))
		for i := range got {
			got[i] = r.Intn(tt.bound)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("seed %d bound %d (-want +got):\n%s", tt.seed, tt.bound, diff)
		}
	}
}

func TestJavaRandomPanicsOnNonPositiveBound(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Intn(0) did not panic")
		}
	}()
	newJavaRandom(1).Intn(0)
}

func TestNewSource(t *testing.T) {
	for _, kind := range []string{"", rngJava, rngPCG} {
		a, err := newSource(kind, 7)
		if err != nil {
			t.Fatalf("newSource(%q) error = %v", kind, err)
		}
		b, _ := newSource(kind, 7)
		for i := 0; i < 50; i++ {
			x, y := a.Intn(rootBound), b.Intn(rootBound)
			if x != y {
				t.Fatalf("%q: draw %d differs between equally seeded sources: %d != %d", kind, i, x, y)
			}
			if x < 0 || x >= rootBound {
				t.Fatalf("%q: draw %d out of range: %d", kind, i, x)
			}
		}
	}

	_, err := newSource("mt19937", 1)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "rng" {
		t.Errorf("newSource(mt19937) error = %v, want rng ValidationError", err)
	}
}
