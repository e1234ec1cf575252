package conv

import (
	"reflect"
	"testing"
)

func TestClampOffset(t *testing.T) {
	tests := []struct {
		pos, n, want int
	}{
		{-5, 10, 0},
		{0, 10, 0},
		{4, 10, 4},
		{10, 10, 10},
		{11, 10, 10},
		{3, 0, 0},
	}

	for _, tt := range tests {
		if got := ClampOffset(tt.pos, tt.n); got != tt.want {
			t.Errorf("ClampOffset(%d, %d) = %d, want %d", tt.pos, tt.n, got, tt.want)
		}
	}
}

func TestRebase(t *testing.T) {
	tests := []struct {
		name string
		loc  []int
		base int
		want []int
	}{
		{"nil", nil, 3, nil},
		{"zero base", []int{1, 2}, 0, []int{1, 2}},
		{"shift", []int{0, 4, 1, 2}, 6, []int{6, 10, 7, 8}},
		{"unmatched group", []int{0, 4, -1, -1}, 6, []int{6, 10, -1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rebase(tt.loc, tt.base); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Rebase() = %v, want %v", got, tt.want)
			}
		})
	}
}
