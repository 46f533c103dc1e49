package ident_test

import (
	"errors"
	"math"
	"testing"

	"github.com/blackwell-systems/libraryctl/internal/ident"
)

func TestNext(t *testing.T) {
	cases := []struct {
		size int
		want uint32
	}{
		{0, 1},
		{1, 2},
		{41, 42},
		{math.MaxUint32 - 1, math.MaxUint32},
	}
	for _, c := range cases {
		got, err := ident.Next(c.size)
		if err != nil {
			t.Fatalf("Next(%d): %v", c.size, err)
		}
		if got != c.want {
			t.Errorf("Next(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestNext_Overflow(t *testing.T) {
	for _, size := range []int{-1, math.MaxUint32} {
		if _, err := ident.Next(size); !errors.Is(err, ident.ErrOverflow) {
			t.Errorf("Next(%d) error = %v, want ErrOverflow", size, err)
		}
	}
}

func TestNext_Sequence(t *testing.T) {
	// Appending one entry at a time yields 1..N.
	var ids []uint32
	for i := 0; i < 5; i++ {
		id, err := ident.Next(len(ids))
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	for i, id := range ids {
		if id != uint32(i+1) {
			t.Errorf("ids[%d] = %d, want %d", i, id, i+1)
		}
	}
}
