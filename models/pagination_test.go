package models

import (
	"math"
	"testing"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		page     int
		size     int
		wantPage int
		want     []int
	}{
		{"page zero is the first page", 0, 2, 1, []int{1, 2}},
		{"middle page", 2, 2, 2, []int{3, 4}},
		{"last partial page", 3, 2, 3, []int{5}},
		{"one past the end", 4, 2, 4, []int{}},
		{"exact fit has no extra page", 2, 5, 2, []int{}},
		{"max int", math.MaxInt, 10, math.MaxInt, []int{}},
		{"max int with size one", math.MaxInt, 1, math.MaxInt, []int{}},
		{"default size", 1, 0, 1, []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.size)
			if got.Count != len(items) || got.Page != tt.wantPage {
				t.Fatalf("count/page = %d/%d", got.Count, got.Page)
			}
			if got.Results == nil || len(got.Results) != len(tt.want) {
				t.Fatalf("results = %v, want %v", got.Results, tt.want)
			}
			for i := range tt.want {
				if got.Results[i] != tt.want[i] {
					t.Fatalf("results = %v, want %v", got.Results, tt.want)
				}
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate([]string(nil), 1, 10)
	if got.Count != 0 || got.Results == nil || len(got.Results) != 0 {
		t.Fatalf("unexpected page %+v", got)
	}
}
