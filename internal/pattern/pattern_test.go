package pattern

import "testing"

func TestIntNum(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 1},
		{"00", 1}, // preserved quirk: "00" scans as two INT_NUM tokens, see DESIGN.md
		{"07", 1},
		{"7", 1},
		{"123", 3},
		{"123abc", 3},
		{"", 0},
		{"a123", 0},
	}
	for _, c := range cases {
		if got := IntNum([]byte(c.in)); got != c.want {
			t.Errorf("IntNum(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFloatNum(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"12.34e-5", 8},
		{"0.0", 3},
		{"1.0", 3},
		{"1.10", 3}, // trailing zero in fraction forbidden beyond "1.1"; "1.10" matches "1.1" only
		{"1.", 0},   // fraction must have at least one digit
		{"abc", 0},
	}
	for _, c := range cases {
		if got := FloatNum([]byte(c.in)); got != c.want {
			t.Errorf("FloatNum(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestID(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"abc123_def 1", 10},
		{"_abc", 0}, // must start with a letter
		{"A", 1},
		{"1abc", 0},
	}
	for _, c := range cases {
		if got := ID([]byte(c.in)); got != c.want {
			t.Errorf("ID(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestInlineCommentStopsBeforeNewline(t *testing.T) {
	in := "// hello\nmain"
	got := InlineComment([]byte(in))
	want := len("// hello")
	if got != want {
		t.Errorf("InlineComment(%q) = %d, want %d", in, got, want)
	}
}

func TestBlockCommentSpansNewlinesNonGreedy(t *testing.T) {
	in := "/* a\nb\nc */ main"
	want := len("/* a\nb\nc */")
	if got := BlockComment([]byte(in)); got != want {
		t.Errorf("BlockComment(%q) = %d, want %d", in, got, want)
	}

	in2 := "/* a */ /* b */"
	want2 := len("/* a */")
	if got := BlockComment([]byte(in2)); got != want2 {
		t.Errorf("BlockComment non-greedy stops at first close: got %d, want %d", got, want2)
	}
}

func TestFloatBeatsIntOnOverlap(t *testing.T) {
	// "12.34" at offset 0: IntNum would only match "12" (2 bytes);
	// FloatNum consumes the whole literal, demonstrating the longest
	// match the scanner must prefer.
	in := []byte("12.34")
	if fl, il := FloatNum(in), IntNum(in); fl <= il {
		t.Errorf("FloatNum(%d) must exceed IntNum(%d) for %q", fl, il, in)
	}
}
