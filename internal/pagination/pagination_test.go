package pagination

import "testing"

func TestDefaults(t *testing.T) {
	tests := []struct {
		name     string
		in       PageRequest
		wantPage int
		wantSize int
	}{
		{"empty", PageRequest{}, 1, DefaultPageSize},
		{"kept", PageRequest{Page: 3, PageSize: 5}, 3, 5},
		{"oversized", PageRequest{Page: 2, PageSize: 500}, 2, DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Defaults()
			if tt.in.Page != tt.wantPage || tt.in.PageSize != tt.wantSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d",
					tt.in.Page, tt.in.PageSize, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (PageRequest{Page: 3, PageSize: 10}).Offset(); got != 20 {
		t.Errorf("expected offset 20, got %d", got)
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse([]int{1, 2}, 1, 2, 3)
	if resp.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", resp.TotalPages)
	}
	if !resp.HasNext {
		t.Error("expected a next page")
	}

	last := NewPageResponse([]int{3}, 2, 2, 3)
	if last.HasNext {
		t.Error("last page should not have a next page")
	}

	empty := NewPageResponse[int](nil, 1, 20, 0)
	if empty.Data == nil || empty.TotalPages != 0 || empty.HasNext {
		t.Errorf("unexpected empty page: %+v", empty)
	}
}
