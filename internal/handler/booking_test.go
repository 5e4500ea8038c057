package handler

import (
	"reflect"
	"testing"
)

func TestNormalizeSeats(t *testing.T) {
	cases := []struct {
		name    string
		in      []string
		want    []string
		wantBad string
	}{
		{
			name: "trims and uppercases",
			in:   []string{" a1 ", "b2"},
			want: []string{"A1", "B2"},
		},
		{
			name:    "rejects duplicate label",
			in:      []string{"A1", "B2", "A1"},
			wantBad: "A1",
		},
		{
			name:    "rejects duplicate differing only in case",
			in:      []string{"A1", "a1"},
			wantBad: "a1",
		},
		{
			name:    "rejects empty label",
			in:      []string{"A1", "  "},
			wantBad: "  ",
		},
		{
			name:    "rejects punctuation",
			in:      []string{"A-1"},
			wantBad: "A-1",
		},
		{
			name:    "rejects overlong label",
			in:      []string{"AAAA11111"},
			wantBad: "AAAA11111",
		},
		{
			name: "empty input yields empty output",
			in:   []string{},
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, bad := normalizeSeats(tc.in)
			if tc.wantBad != "" {
				if bad != tc.wantBad {
					t.Fatalf("expected bad label %q, got %q", tc.wantBad, bad)
				}
				return
			}
			if bad != "" {
				t.Fatalf("unexpected bad label %q", bad)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
