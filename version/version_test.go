package version

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		s                   string
		major, minor, patch int
		valid               bool
	}{
		{"0.0.0", 0, 0, 0, true},
		{"0.3.1", 0, 3, 1, true},
		{"1.02.3", 1, 2, 3, true},
		{"", 0, 0, 0, false},
		{"0", 0, 0, 0, false},
		{"0.0", 0, 0, 0, false},
		{"0.0.0.0", 0, 0, 0, false},
		{"0.-1.0", 0, 0, 0, false},
		{"a.b.c", 0, 0, 0, false},
	}

	for i := range tests {
		v, err := Parse(tests[i].s)
		if err != nil {
			if tests[i].valid {
				t.Errorf("Expected Parse('%s') to succeed, but it gave an "+
					"error.", tests[i].s)
			} else if !strings.Contains(err.Error(), tests[i].s) {
				t.Errorf("Parse('%s') gave an error that does not name the "+
					"input: %s", tests[i].s, err.Error())
			}
		} else {
			if !tests[i].valid {
				t.Errorf("Expected Parse('%s') to give an error, but it "+
					"didn't.", tests[i].s)
			}
			if v.Major != tests[i].major || v.Minor != tests[i].minor ||
				v.Patch != tests[i].patch {
				t.Errorf("Parse('%s') parsed to %s.", tests[i].s, v)
			}
		}
	}
}

func TestLater(t *testing.T) {
	tests := []struct {
		v, w  Version
		later bool
	}{
		{Version{0, 0, 0}, Version{0, 0, 0}, false},
		{Version{0, 0, 1}, Version{0, 0, 0}, true},
		{Version{0, 1, 0}, Version{0, 0, 0}, true},
		{Version{1, 0, 0}, Version{0, 0, 0}, true},
		{Version{0, 0, 0}, Version{0, 0, 1}, false},
		{Version{0, 0, 0}, Version{0, 1, 0}, false},
		{Version{0, 0, 0}, Version{1, 0, 0}, false},
		{Version{2, 13, 7}, Version{2, 12, 19}, true},
		{Version{2, 12, 19}, Version{2, 13, 7}, false},
	}

	for i := range tests {
		if later := tests[i].v.Later(tests[i].w); later != tests[i].later {
			t.Errorf("%d) %s.Later(%s) returned %v.",
				i+1, tests[i].v, tests[i].w, later)
		}
	}
}

func TestCompatible(t *testing.T) {
	src, err := Parse(SourceVersion)
	if err != nil {
		t.Fatalf("SourceVersion '%s' does not parse.", SourceVersion)
	}

	tests := []struct {
		s  string
		ok bool
	}{
		{SourceVersion, true},
		{Version{src.Major, src.Minor + 1, 0}.String(), true},
		{Version{src.Major + 1, 0, 0}.String(), false},
		{"not.a.version", false},
		{"1.2", false},
	}

	for i := range tests {
		err := Compatible(tests[i].s)
		if tests[i].ok && err != nil {
			t.Errorf("%d) Expected Compatible('%s') to succeed, but got: %s",
				i+1, tests[i].s, err.Error())
		} else if !tests[i].ok && err == nil {
			t.Errorf("%d) Expected Compatible('%s') to fail, but it didn't.",
				i+1, tests[i].s)
		} else if err != nil && !strings.Contains(err.Error(), tests[i].s) {
			t.Errorf("%d) Compatible('%s') gave an error that does not name "+
				"the offending version: %s", i+1, tests[i].s, err.Error())
		}
	}
}
