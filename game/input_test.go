package game

import "testing"

func TestMouseLook(t *testing.T) {
	m := NewMouseLook()
	steps := []struct {
		name   string
		toggle bool
		x      int
		want   float64
	}{
		{"first position primes", false, 400, 0},
		{"motion right", false, 410, 10},
		{"motion left", false, 395, -15},
		{"released", true, 600, 0},
		{"released ignores motion", false, 100, 0},
		{"recaptured primes again", true, 300, 0},
		{"motion after recapture", false, 305, 5},
	}
	for _, st := range steps {
		if st.toggle {
			m.Toggle()
		}
		if got := m.Delta(st.x); got != st.want {
			t.Fatalf("%s: delta = %v, want %v", st.name, got, st.want)
		}
	}
	if !m.Captured() {
		t.Fatal("two toggles should leave the cursor captured")
	}
}
