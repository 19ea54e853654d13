package envutil

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{name: "unset", raw: "", want: time.Minute},
		{name: "go duration", raw: "5m", want: 5 * time.Minute},
		{name: "seconds", raw: "90", want: 90 * time.Second},
		{name: "garbage", raw: "soon", want: time.Minute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("ENVUTIL_TEST_DURATION", tc.raw)
			if got := Duration("ENVUTIL_TEST_DURATION", time.Minute); got != tc.want {
				t.Fatalf("Duration(%q): got=%v want=%v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestBoolAndList(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_BOOL", "on")
	if !Bool("ENVUTIL_TEST_BOOL", false) {
		t.Fatalf("expected true")
	}
	t.Setenv("ENVUTIL_TEST_BOOL", "maybe")
	if Bool("ENVUTIL_TEST_BOOL", false) {
		t.Fatalf("unparseable value should fall back to default")
	}

	t.Setenv("ENVUTIL_TEST_LIST", " a, ,b ")
	got := List("ENVUTIL_TEST_LIST", nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected list: %#v", got)
	}
}
