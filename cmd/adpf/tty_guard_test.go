package main

import "testing"

func TestShouldSuppressTTYQueries(t *testing.T) {
	tests := []struct {
		args []string
		env  bool
		want bool
	}{
		{nil, false, false},
		{[]string{"--section", "mapping"}, false, false},
		{[]string{"sections"}, false, true},
		{[]string{"--debug", "show", "home"}, false, true},
		{[]string{"export", "--format", "json"}, false, true},
		{[]string{"export", "--wizard"}, false, false},
		{[]string{"--version"}, false, true},
		{[]string{"-h"}, false, true},
		{nil, true, true},
	}

	for _, tt := range tests {
		if got := shouldSuppressTTYQueries(tt.args, tt.env); got != tt.want {
			t.Errorf("shouldSuppressTTYQueries(%q, %v) = %v, want %v", tt.args, tt.env, got, tt.want)
		}
	}
}
