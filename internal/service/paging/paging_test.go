package paging

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Params
		wantPage  int
		wantLimit int
	}{
		{"defaults", Params{}, 1, 10},
		{"negative page", Params{Page: -3, Limit: 20}, 1, 20},
		{"limit too large", Params{Page: 2, Limit: 500}, 2, 10},
		{"valid", Params{Page: 3, Limit: 25}, 3, 25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.Page != tc.wantPage || got.Limit != tc.wantLimit {
				t.Errorf("Normalize(%+v) = %+v", tc.in, got)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 10}.Normalize()
	if p.Offset() != 20 {
		t.Errorf("offset = %d, want 20", p.Offset())
	}
}

func TestNewMeta(t *testing.T) {
	p := Params{Page: 2, Limit: 10}.Normalize()
	m := NewMeta(p, 35)
	if m.TotalPages != 4 {
		t.Errorf("totalPages = %d, want 4", m.TotalPages)
	}
	if !m.HasNext || !m.HasPrev {
		t.Errorf("hasNext/hasPrev = %v/%v, want true/true", m.HasNext, m.HasPrev)
	}

	empty := NewMeta(Params{}.Normalize(), 0)
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty meta = %+v", empty)
	}
}
