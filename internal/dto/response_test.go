package dto

import "testing"

func TestNewPagination_Math(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty", 1, 12, 0, 0, false, false},
		{"single partial page", 1, 12, 1, 1, false, false},
		{"exact page boundary", 1, 12, 12, 1, false, false},
		{"one over boundary", 1, 12, 13, 2, true, false},
		{"middle page", 2, 12, 30, 3, true, true},
		{"last page", 3, 12, 30, 3, false, true},
		{"page past the end", 5, 12, 30, 3, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			if p.TotalPages != tc.totalPages {
				t.Errorf("totalPages=%d, want %d", p.TotalPages, tc.totalPages)
			}
			if p.HasNext != tc.hasNext || p.HasPrev != tc.hasPrev {
				t.Errorf("hasNext=%v hasPrev=%v, want %v/%v", p.HasNext, p.HasPrev, tc.hasNext, tc.hasPrev)
			}
			if p.Page != tc.page || p.Limit != tc.limit || p.Total != tc.total {
				t.Errorf("echoed fields wrong: %+v", p)
			}
		})
	}
}

func TestFail_KeepsDataZero(t *testing.T) {
	resp := Fail[*ProfileResponse]("boom")
	if resp.Data != nil {
		t.Fatalf("data=%+v, want nil", resp.Data)
	}
	if resp.Error == nil || *resp.Error != "boom" {
		t.Fatalf("error=%v", resp.Error)
	}
}

func TestOKPage_NilBecomesEmptySlice(t *testing.T) {
	resp := OKPage[ProfileResponse](nil, NewPagination(1, 12, 0))
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Fatalf("data=%v, want []", resp.Data)
	}
	if resp.Error != nil {
		t.Fatalf("error=%v", resp.Error)
	}
}

func TestFailPage_UsesRequestedPageAndZeroTotal(t *testing.T) {
	resp := FailPage[ProfileResponse]("storage down", 4, 12)
	if len(resp.Data) != 0 {
		t.Fatalf("data=%v", resp.Data)
	}
	p := resp.Pagination
	if p.Page != 4 || p.Limit != 12 || p.Total != 0 || p.TotalPages != 0 || p.HasNext {
		t.Fatalf("pagination=%+v", p)
	}
	if resp.Error == nil || *resp.Error != "storage down" {
		t.Fatalf("error=%v", resp.Error)
	}
}
