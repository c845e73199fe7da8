package middleware

import "testing"

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc.def.ghi", "abc.def.ghi", true},
		{"  Bearer token  ", "token", true},
		{"Bearer ", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"abc.def.ghi", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := bearerTokenFromHeader(c.header)
		if ok != c.ok || got != c.want {
			t.Fatalf("header %q: expected (%q, %v), got (%q, %v)", c.header, c.want, c.ok, got, ok)
		}
	}
}
