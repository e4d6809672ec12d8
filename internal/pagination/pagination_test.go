package pagination

import (
	"math"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name         string
		bounds       Bounds
		page, limit  string
		wantP, wantL int
	}{
		{"defaults", Jobs, "", "", 1, 10},
		{"garbage", Jobs, "abc", "xyz", 1, 10},
		{"negative page", Jobs, "-3", "5", 1, 5},
		{"zero limit", Jobs, "2", "0", 2, 1},
		{"job cap", Jobs, "1", "500", 1, 50},
		{"application default", Applications, "", "", 1, 20},
		{"application cap", Applications, "4", "1000", 4, 100},
		{"huge page", Jobs, strconv.Itoa(math.MaxInt), "10", math.MaxInt / 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.bounds.Parse(tc.page, tc.limit)
			if got.Page != tc.wantP || got.Limit != tc.wantL {
				t.Fatalf("Parse(%q, %q) = %+v, want page=%d limit=%d", tc.page, tc.limit, got, tc.wantP, tc.wantL)
			}
		})
	}
}

func TestNewMeta(t *testing.T) {
	for total := int64(0); total <= 25; total++ {
		for limit := 1; limit <= 7; limit++ {
			for page := 1; page <= 6; page++ {
				m := NewMeta(Params{Page: page, Limit: limit}, total)
				wantPages := int(total) / limit
				if int(total)%limit != 0 {
					wantPages++
				}
				if m.TotalPages != wantPages {
					t.Fatalf("total=%d limit=%d: totalPages=%d want %d", total, limit, m.TotalPages, wantPages)
				}
				if m.HasNextPage != (page < wantPages) {
					t.Fatalf("total=%d limit=%d page=%d: hasNextPage=%v", total, limit, page, m.HasNextPage)
				}
				if m.HasPrevPage != (page > 1) {
					t.Fatalf("page=%d: hasPrevPage=%v", page, m.HasPrevPage)
				}
			}
		}
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("offset = %d, want 20", got)
	}
}

func TestOffsetNeverOverflows(t *testing.T) {
	for _, b := range []Bounds{Jobs, Applications} {
		for limit := 1; limit <= b.MaxLimit; limit++ {
			p := b.Clamp(math.MaxInt, limit)
			if off := p.Offset(); off < 0 {
				t.Fatalf("limit=%d: offset = %d, want >= 0", limit, off)
			}
			m := NewMeta(p, 1000)
			if m.HasNextPage || p.Page <= m.TotalPages {
				t.Fatalf("limit=%d: page %d should be beyond totalPages %d", limit, p.Page, m.TotalPages)
			}
		}
	}
}
