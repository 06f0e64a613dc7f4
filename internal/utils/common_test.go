package utils

import "testing"

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"/", ""},
		{"/ui", "ui"},
		{"#/foo/bar/0/baz", "foo.bar[0].baz"},
		{"/a~1b/c~0d", "a/b.c~d"},
		{"/items/2", "items[2]"},
	}
	for _, tt := range tests {
		if got := JSONPointerToPath(tt.ptr); got != tt.want {
			t.Errorf("JSONPointerToPath(%q) = %q, want %q", tt.ptr, got, tt.want)
		}
	}
}
