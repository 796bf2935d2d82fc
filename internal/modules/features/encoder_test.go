package features

import "testing"

func TestEncoder_Encode(t *testing.T) {
	e := NewEncoder([]string{"Honda", "Mazda", "Toyota"})

	if i, ok := e.Encode("Mazda"); !ok || i != 1 {
		t.Errorf("Encode(Mazda) = (%d, %v), want (1, true)", i, ok)
	}
	if _, ok := e.Encode("Lada"); ok {
		t.Error("Encode(Lada) reported ok for an unseen label")
	}
}

func TestEncoder_DefaultIndexIsMidpoint(t *testing.T) {
	tests := []struct {
		classes []string
		want    int
	}{
		{[]string{"a"}, 0},
		{[]string{"a", "b"}, 1},
		{[]string{"a", "b", "c"}, 1},
		{[]string{"a", "b", "c", "d", "e"}, 2},
	}
	for _, tt := range tests {
		e := NewEncoder(tt.classes)
		if got := e.DefaultIndex(); got != tt.want {
			t.Errorf("DefaultIndex for %d classes = %d, want %d", len(tt.classes), got, tt.want)
		}
	}
}
