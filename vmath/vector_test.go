package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeZeroSafe(t *testing.T) {
	n := Vec2{}.Normalize()
	if !n.IsZero() {
		t.Fatalf("Expected zero vector, got %+v", n)
	}
	if !n.IsFinite() {
		t.Fatal("Normalize of zero vector produced non-finite components")
	}
}

func TestSetMag(t *testing.T) {
	v := V(3, 4).SetMag(10)
	if math.Abs(v.Mag()-10) > eps {
		t.Errorf("Expected magnitude 10, got %f", v.Mag())
	}
	if math.Abs(v.X-6) > eps || math.Abs(v.Y-8) > eps {
		t.Errorf("Direction not preserved: %+v", v)
	}

	if z := (Vec2{}).SetMag(5); !z.IsZero() {
		t.Errorf("SetMag on zero vector should stay zero, got %+v", z)
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		max  float64
		want float64
	}{
		{"under", V(0.3, 0.4), 1, 0.5},
		{"over", V(30, 40), 5, 5},
		{"exact", V(3, 4), 5, 5},
		{"zero", Vec2{}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Limit(tt.max).Mag()
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Limit(%v) magnitude = %f, want %f", tt.max, got, tt.want)
			}
		})
	}
}

func TestHeadingAndRotate(t *testing.T) {
	if h := V(0, 1).Heading(); math.Abs(h-math.Pi/2) > eps {
		t.Errorf("Expected heading π/2, got %f", h)
	}
	if h := (Vec2{}).Heading(); h != 0 {
		t.Errorf("Zero vector heading should be 0, got %f", h)
	}

	r := V(1, 0).Rotate(math.Pi / 2)
	if math.Abs(r.X) > eps || math.Abs(r.Y-1) > eps {
		t.Errorf("Rotate by π/2 = %+v, want (0,1)", r)
	}
}

func TestDivZeroSafe(t *testing.T) {
	if d := V(1, 1).Div(0); !d.IsZero() {
		t.Errorf("Div by zero should return zero vector, got %+v", d)
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(V(0, 0), 5, V(9, 0), 5) {
		t.Error("Expected overlap at distance 9 with radii 5+5")
	}
	if CirclesOverlap(V(0, 0), 5, V(10, 0), 5) {
		t.Error("Touching circles must not overlap")
	}
}

func TestMap(t *testing.T) {
	if got := Map(75, 0, 150, 2, 0.5); math.Abs(got-1.25) > eps {
		t.Errorf("Map midpoint = %f, want 1.25", got)
	}
	if got := Map(5, 3, 3, 7, 9); got != 7 {
		t.Errorf("Degenerate Map = %f, want 7", got)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at step %d", i)
		}
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		x := r.Range(-0.3, 0.3)
		if x < -0.3 || x >= 0.3 {
			t.Fatalf("Range out of bounds: %f", x)
		}
		n := r.IntRange(7, 12)
		if n < 7 || n >= 12 {
			t.Fatalf("IntRange out of bounds: %d", n)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Zero seed must not produce a stuck generator")
	}
}
