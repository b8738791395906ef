package stringutil

import "testing"

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "apostrophe", in: "it&#x27;s here", want: "it's here"},
		{name: "double quote", in: "&quot;quoted&quot;", want: `"quoted"`},
		{name: "both", in: "&quot;it&#x27;s&quot;", want: `"it's"`},
		{name: "no entities untouched", in: "plain title", want: "plain title"},
		{name: "other entities untouched", in: "a &amp; b &lt;c&gt;", want: "a &amp; b &lt;c&gt;"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeEntities(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodeEntitiesIdempotent(t *testing.T) {
	inputs := []string{"plain", "it's already decoded", `"quoted"`, "中文查询"}
	for _, in := range inputs {
		once := DecodeEntities(in)
		if once != in {
			t.Fatalf("decode changed entity-free input %q to %q", in, once)
		}
		if twice := DecodeEntities(once); twice != once {
			t.Fatalf("decode not idempotent for %q", in)
		}
	}
}
