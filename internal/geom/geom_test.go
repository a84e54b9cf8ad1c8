package geom

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 2, 2), true},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 5, 5), false},
		{"touching corners", NewRect(0, 0, 10, 10), NewRect(10, 10, 5, 5), false},
		{"vertical overlap only", NewRect(0, 0, 10, 10), NewRect(20, 5, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapsRequiresVisibility(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	b.Visible = false
	if a.Overlaps(b) {
		t.Error("invisible rect must never collide")
	}

	b.Visible = true
	a.Visible = false
	if a.Overlaps(b) {
		t.Error("invisible receiver must never collide")
	}
}

func TestCenter(t *testing.T) {
	r := NewRect(10, 20, 4, 8)
	cx, cy := r.Center()
	if cx != 12 || cy != 24 {
		t.Errorf("Center() = (%v, %v), want (12, 24)", cx, cy)
	}
}

func TestOutside(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		margin float64
		want   bool
	}{
		{"inside", NewRect(50, 50, 10, 10), 10, false},
		{"above within margin", NewRect(50, -15, 10, 10), 10, false},
		{"above beyond margin", NewRect(50, -25, 10, 10), 10, true},
		{"below beyond margin", NewRect(50, 175, 10, 10), 10, true},
		{"left beyond margin", NewRect(-25, 50, 10, 10), 10, true},
		{"right beyond margin", NewRect(135, 50, 10, 10), 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Outside(120, 160, tt.margin); got != tt.want {
				t.Errorf("Outside() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5) = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1) = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11) = %v", got)
	}
}
