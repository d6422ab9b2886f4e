package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -2, 25, 0, 25},
		{"zero size uses default", 2, 0, 10, 10},
		{"oversized page size uses default", 1, 500, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(35, 3, 10)
	if info.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", info.TotalPages)
	}
	if info.CurrentPage != 3 {
		t.Errorf("CurrentPage = %d, want 3", info.CurrentPage)
	}
	if info.TotalItems != 35 {
		t.Errorf("TotalItems = %d, want 35", info.TotalItems)
	}
}

func TestNewPaginationInfoClampsCurrentPage(t *testing.T) {
	info := NewPaginationInfo(5, 9, 10)
	if info.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want clamped to 1", info.CurrentPage)
	}
}

func TestNewPaginationInfoEmptyResult(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	if info.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1 for an empty first page", info.TotalPages)
	}
}
