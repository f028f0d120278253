package layout

import (
	"testing"

	"github.com/young1lin/pillrow/internal/pill"
)

func TestFilterPills(t *testing.T) {
	pills := []pill.Pill{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	tests := []struct {
		name string
		show []string
		hide []string
		want []string
	}{
		{"no filters", nil, nil, []string{"a", "b", "c"}},
		{"show list", []string{"a", "c"}, nil, []string{"a", "c"}},
		{"hide list", nil, []string{"b"}, []string{"a", "c"}},
		{"hide wins over show", []string{"a", "b"}, []string{"b"}, []string{"a"}},
		{"unknown ids", []string{"x"}, nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPills(pills, tt.show, tt.hide)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterPills() returned %d pills, want %d", len(got), len(tt.want))
			}
			for i, p := range got {
				if p.ID != tt.want[i] {
					t.Errorf("FilterPills()[%d] = %q, want %q", i, p.ID, tt.want[i])
				}
			}
		})
	}
}
