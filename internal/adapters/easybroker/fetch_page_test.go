package easybroker

import "testing"

func TestPagePaginationHasNext(t *testing.T) {
	tests := []struct {
		name     string
		nextPage *int
		want     bool
	}{
		{"null next_page ends pagination", nil, false},
		{"zero next_page ends pagination", intPtr(0), false},
		{"negative next_page ends pagination", intPtr(-1), false},
		{"positive next_page continues", intPtr(2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagePagination{NextPage: tt.nextPage}
			if got := p.hasNext(); got != tt.want {
				t.Errorf("hasNext() = %v, want %v", got, tt.want)
			}
		})
	}
}
