package main

import (
	"testing"

	"photostrip/imageutil"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    imageutil.RGB
		wantErr bool
	}{
		{"255,255,255", imageutil.RGB{R: 255, G: 255, B: 255}, false},
		{"0,0,0", imageutil.RGB{}, false},
		{"240, 240, 240", imageutil.RGB{R: 240, G: 240, B: 240}, false},
		{"12,34", imageutil.RGB{}, true},
		{"1,2,3,4", imageutil.RGB{}, true},
		{"256,0,0", imageutil.RGB{}, true},
		{"a,b,c", imageutil.RGB{}, true},
	}
	for _, tc := range cases {
		got, err := parseColor(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseColor(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseColor(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
