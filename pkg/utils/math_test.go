package utils

import (
	"math"
	"testing"
)

func TestLerpAngleTakesShortestWay(t *testing.T) {
	tests := []struct {
		name        string
		from, to, t float64
		want        float64
	}{
		{"halfway", 0, math.Pi / 2, 0.5, math.Pi / 4},
		{"across pi", 3 * math.Pi / 4, -3 * math.Pi / 4, 0.5, math.Pi},
		{"done", 0.3, 1.2, 1, 1.2},
		{"unnormalized", 4 * math.Pi, math.Pi / 2, 1, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpAngle(tt.from, tt.to, tt.t)
			// π и -π — одно направление
			if d := math.Abs(NormalizeAngle(got - tt.want)); d > 1e-9 && math.Abs(d-2*math.Pi) > 1e-9 {
				t.Fatalf("LerpAngle(%v, %v, %v) = %v, want %v", tt.from, tt.to, tt.t, got, tt.want)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 7, -7, 100, -100} {
		n := NormalizeAngle(a)
		if n < -math.Pi || n > math.Pi {
			t.Fatalf("NormalizeAngle(%v) = %v", a, n)
		}
		if d := math.Abs(math.Sin(n) - math.Sin(a)); d > 1e-9 {
			t.Fatalf("NormalizeAngle(%v) changed the direction", a)
		}
	}
}
