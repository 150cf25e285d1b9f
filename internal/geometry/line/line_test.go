package line

import (
	"errors"
	"math"
	"testing"

	"uniformity/internal/geometry/vector"
)

func TestNewNormalizesDirection(t *testing.T) {
	p := vector.NewVec3(1, 2, 3)
	l, err := New(p, vector.NewVec3(0, 3, 4))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if l.Point() != p {
		t.Fatalf("point=%v", l.Point())
	}
	if math.Abs(l.Direction().Norm()-1) > 1e-12 {
		t.Fatalf("|direction|=%v", l.Direction().Norm())
	}
	if !l.Direction().ApproxEqual(vector.NewVec3(0, 0.6, 0.8), 1e-12) {
		t.Fatalf("direction=%v", l.Direction())
	}
}

func TestNewZeroDirectionFails(t *testing.T) {
	_, err := New(vector.NewVec3(1, 1, 1), vector.Zero)
	if !errors.Is(err, vector.ErrNormalization) {
		t.Fatalf("expected ErrNormalization, got %v", err)
	}
	if !errors.Is(err, vector.ErrDivideByZero) {
		t.Fatalf("expected error to match ErrDivideByZero too, got %v", err)
	}
}

func TestSegmentDirection(t *testing.T) {
	s, err := NewSegment(vector.NewVec3(0, 0, 0), vector.NewVec3(0, 0, 5))
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if !s.Direction().Equal(vector.NewVec3(0, 0, 1)) {
		t.Fatalf("direction=%v", s.Direction())
	}
	if s.Point() != s.Start() {
		t.Fatalf("point=%v start=%v", s.Point(), s.Start())
	}
	if s.Start() != vector.Zero || s.End() != vector.NewVec3(0, 0, 5) {
		t.Fatalf("endpoints=%v,%v", s.Start(), s.End())
	}
}

func TestSegmentZeroLengthFails(t *testing.T) {
	p := vector.NewVec3(1, 1, 1)
	_, err := NewSegment(p, p)
	if !errors.Is(err, vector.ErrNormalization) {
		t.Fatalf("expected ErrNormalization, got %v", err)
	}
}

func TestSegmentIsLinear(t *testing.T) {
	start := vector.NewVec3(1, -2, 0.5)
	end := vector.NewVec3(4, 2, 0.5)
	s, err := NewSegment(start, end)
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	l, err := New(start, end.Sub(start))
	if err != nil {
		t.Fatalf("line: %v", err)
	}

	for _, lin := range []Linear{l, s, s.AsLine()} {
		if lin.Point() != start {
			t.Fatalf("%v: point=%v", lin, lin.Point())
		}
		if !lin.Direction().ApproxEqual(vector.NewVec3(0.6, 0.8, 0), 1e-12) {
			t.Fatalf("%v: direction=%v", lin, lin.Direction())
		}
	}
}

func TestStrings(t *testing.T) {
	l, err := New(vector.NewVec3(1, 2, 3), vector.NewVec3(2, 0, 0))
	if err != nil {
		t.Fatalf("line: %v", err)
	}
	if got := l.String(); got != "Line(point=(1, 2, 3), direction=(1, 0, 0))" {
		t.Fatalf("line string=%q", got)
	}

	s, err := NewSegment(vector.Zero, vector.NewVec3(0, 0, 5))
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if got := s.String(); got != "Segment(start=(0, 0, 0), end=(0, 0, 5))" {
		t.Fatalf("segment string=%q", got)
	}
}

func TestNewHugeDirection(t *testing.T) {
	l, err := New(vector.Zero, vector.NewVec3(math.MaxFloat64, math.MaxFloat64, 0))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if math.Abs(l.Direction().Norm()-1) > 1e-12 {
		t.Fatalf("|direction|=%v", l.Direction().Norm())
	}
	want := vector.NewVec3(1/math.Sqrt2, 1/math.Sqrt2, 0)
	if !l.Direction().ApproxEqual(want, 1e-12) {
		t.Fatalf("direction=%v, want %v", l.Direction(), want)
	}
}

func TestSegmentOverflowingSpanFails(t *testing.T) {
	_, err := NewSegment(vector.NewVec3(-1e308, 0, 0), vector.NewVec3(1e308, 0, 0))
	if !errors.Is(err, vector.ErrNonFinite) {
		t.Fatalf("expected ErrNonFinite, got %v", err)
	}

	s, err := NewSegment(vector.NewVec3(-1.5e308, 0, 0), vector.NewVec3(0, 1.5e308, 0))
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if math.Abs(s.Direction().Norm()-1) > 1e-12 {
		t.Fatalf("|direction|=%v", s.Direction().Norm())
	}
}
