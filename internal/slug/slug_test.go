package slug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_Examples(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple words", "Hello World", "hello-world"},
		{"surrounding and doubled slashes", "/a//b/", "a/b"},
		{"underscores and padding", "  _Foo_Bar_  ", "foo-bar"},
		{"empty", "", ""},
		{"only separators", "///", ""},
		{"mixed case segments", "Coins/Rare-Errors", "coins/rare-errors"},
		{"punctuation becomes dashes", "what's new?!", "what-s-new"},
		{"whitespace runs", "a   b\tc", "a-b-c"},
		{"dash runs collapse", "a---b", "a-b"},
		{"segment reduced to nothing is dropped", "a/!!!/b", "a/b"},
		{"unicode falls back to dashes", "café", "caf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"/a//b/",
		"  _Foo_Bar_  ",
		"",
		"already-normal/slug",
		"Weird -- Input // With___Stuff",
		"404",
	}

	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestReservedSegment(t *testing.T) {
	seg, reserved := ReservedSegment("static/logo.png")
	require.True(t, reserved)
	require.Equal(t, "static", seg)

	seg, reserved = ReservedSegment("category/coins")
	require.True(t, reserved)
	require.Equal(t, "category", seg)

	_, reserved = ReservedSegment("categories/coins")
	require.False(t, reserved)

	_, reserved = ReservedSegment("coins/static")
	require.False(t, reserved)

	_, reserved = ReservedSegment("")
	require.False(t, reserved)
}
