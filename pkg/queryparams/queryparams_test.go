package queryparams

import "testing"

func TestValidateDefaults(t *testing.T) {
	p := ListParams{Page: 0, PerPage: -5, OrderBy: "sideways"}
	p.Validate()

	if p.Page != DefaultPage {
		t.Errorf("Page = %d, beklenen %d", p.Page, DefaultPage)
	}
	if p.PerPage != DefaultPerPage {
		t.Errorf("PerPage = %d, beklenen %d", p.PerPage, DefaultPerPage)
	}
	if p.OrderBy != DefaultOrderBy {
		t.Errorf("OrderBy = %q, beklenen %q", p.OrderBy, DefaultOrderBy)
	}
}

func TestValidateClampsPerPage(t *testing.T) {
	p := ListParams{Page: 2, PerPage: 500, OrderBy: "asc"}
	p.Validate()

	if p.PerPage != MaxPerPage {
		t.Errorf("PerPage = %d, beklenen %d", p.PerPage, MaxPerPage)
	}
	if p.OrderBy != "asc" {
		t.Errorf("OrderBy değişmemeliydi, geldi: %q", p.OrderBy)
	}
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 20}
	if got := p.CalculateOffset(); got != 40 {
		t.Errorf("CalculateOffset = %d, beklenen 40", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 0, 0},
	}
	for _, c := range cases {
		if got := CalculateTotalPages(c.total, c.perPage); got != c.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, beklenen %d", c.total, c.perPage, got, c.want)
		}
	}
}
