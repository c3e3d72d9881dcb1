package tile

import (
	"testing"

	"github.com/matryer/is"
)

func TestFullSet(t *testing.T) {
	is := is.New(t)
	set := FullSet()
	is.Equal(len(set), SetSize)

	// No duplicates up to reversal.
	for i, a := range set {
		for _, b := range set[i+1:] {
			is.True(!a.Equal(b))
		}
	}

	// Exactly 7 tiles carry any given pip.
	for v := MinPip; v <= MaxPip; v++ {
		n := 0
		for _, tl := range set {
			if tl.Matches(v) {
				n++
			}
		}
		is.Equal(n, 7)
	}
}

func TestNewRejectsBadPips(t *testing.T) {
	for _, tc := range [][2]int{{-1, 3}, {3, -1}, {7, 0}, {0, 7}, {12, 12}} {
		if _, err := New(tc[0], tc[1]); err == nil {
			t.Errorf("New(%d, %d) should have failed", tc[0], tc[1])
		}
	}
	if _, err := New(0, 6); err != nil {
		t.Errorf("New(0, 6) failed: %v", err)
	}
}

func TestMatches(t *testing.T) {
	is := is.New(t)
	tl := MustNew(2, 5)
	is.True(tl.Matches(2))
	is.True(tl.Matches(5))
	is.True(!tl.Matches(3))

	dbl := MustNew(4, 4)
	is.True(dbl.Matches(4))
	is.True(dbl.IsDouble())
	is.True(!tl.IsDouble())
}

func TestReversedAndEqual(t *testing.T) {
	is := is.New(t)
	tl := MustNew(2, 5)
	rev := tl.Reversed()
	is.Equal(rev.L, Pip(5))
	is.Equal(rev.H, Pip(2))
	// Flipping does not change identity.
	is.True(tl.Equal(rev))
	is.True(!tl.Equal(MustNew(2, 4)))
}

func TestOtherEnd(t *testing.T) {
	is := is.New(t)
	tl := MustNew(2, 5)
	is.Equal(tl.OtherEnd(2), Pip(5))
	is.Equal(tl.OtherEnd(5), Pip(2))
	is.Equal(MustNew(3, 3).OtherEnd(3), Pip(3))
}

func TestParse(t *testing.T) {
	is := is.New(t)
	for _, s := range []string{"3-5", "3|5", "[3|5]"} {
		tl, err := Parse(s)
		is.NoErr(err)
		is.Equal(tl, MustNew(3, 5))
	}
	if _, err := Parse("9-5"); err == nil {
		t.Error("expected out-of-range parse to fail")
	}
	if _, err := Parse("banana"); err == nil {
		t.Error("expected garbage parse to fail")
	}
}

func TestPipSum(t *testing.T) {
	is := is.New(t)
	is.Equal(MustNew(6, 6).PipSum(), MaxPipSum)
	is.Equal(MustNew(0, 0).PipSum(), 0)
	is.Equal(MustNew(2, 5).PipSum(), 7)
}
