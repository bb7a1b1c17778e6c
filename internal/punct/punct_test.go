package punct

// Notes:
// - Map/Reduce/Merge are tested directly; Convert is tested through scenarios that
//   exercise all three stages together.
// - Merge is fed hand-built token streams to pin the spacing law independently of
//   the rule table.
// - FuzzConvert checks idempotence and that no convertible rune survives; it does not
//   assert exact spacing (covered by the table tests).

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func lit(s string) Token { return Token{Kind: Literal, Text: s} }

func mk() Token { return Token{Kind: Marker} }

// ---------------------------------------------------------------------------
// TestMap - Character mapping
// ---------------------------------------------------------------------------

func TestMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src     rune
		literal string
		before  int
		after   int
	}{
		{'》', ">", 1, 1},
		{'《', "<", 1, 2},
		{'：', ":", 2, 1},
		{'；', ";", 2, 1},
		{'“', "\"", 1, 2},
		{'”', "\"", 2, 1},
		{'！', "!", 2, 1},
		{'…', "...", 2, 2},
		{'（', "(", 1, 2},
		{'）', ")", 2, 1},
		{'【', "[", 1, 2},
		{'】', "]", 2, 1},
		{'、', ",", 2, 1},
		{'。', ".", 2, 1},
		{'，', ",", 2, 1},
		{'？', "?", 2, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.src), func(t *testing.T) {
			t.Parallel()

			got := Map(tt.src)
			if !got.Converted {
				t.Fatalf("Map(%q).Converted = false, want true", tt.src)
			}
			if len(got.Tokens) != tt.before+1+tt.after {
				t.Fatalf("Map(%q) has %d tokens, want %d", tt.src, len(got.Tokens), tt.before+1+tt.after)
			}
			for i := 0; i < tt.before; i++ {
				if got.Tokens[i].Kind != Marker {
					t.Errorf("token %d = %+v, want marker", i, got.Tokens[i])
				}
			}
			if l := got.Tokens[tt.before]; l.Kind != Literal || l.Text != tt.literal {
				t.Errorf("literal token = %+v, want %q", l, tt.literal)
			}
			for i := tt.before + 1; i < len(got.Tokens); i++ {
				if got.Tokens[i].Kind != Marker {
					t.Errorf("token %d = %+v, want marker", i, got.Tokens[i])
				}
			}
		})
	}
}

func TestMap_RawPassthrough(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'a', '中', ',', '.', ' ', '　', '\n', '「', '〉', utf8.RuneError} {
		got := Map(r)
		if got.Converted {
			t.Errorf("Map(%q).Converted = true, want false", r)
		}
		if len(got.Tokens) != 1 || got.Tokens[0] != lit(string(r)) {
			t.Errorf("Map(%q).Tokens = %+v, want single literal", r, got.Tokens)
		}
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	rules := Rules()
	if len(rules) != 16 {
		t.Fatalf("len(Rules()) = %d, want 16", len(rules))
	}
	for i := 1; i < len(rules); i++ {
		if rules[i-1].Source >= rules[i].Source {
			t.Errorf("rules not sorted at %d: %q >= %q", i, rules[i-1].Source, rules[i].Source)
		}
	}

	// Mutating the copy must not leak into the shared table.
	rules[0].Tokens[0] = lit("x")
	if Map(rules[0].Source).Tokens[0].Kind != Marker {
		t.Error("Rules() returned tokens aliased with the rule table")
	}
}

func TestRule_Replacement(t *testing.T) {
	t.Parallel()

	for _, r := range Rules() {
		if r.Source == '…' {
			if got := r.Replacement(); got != "..." {
				t.Errorf("Replacement(…) = %q, want %q", got, "...")
			}
			continue
		}
		if got := r.Replacement(); len(got) != 1 {
			t.Errorf("Replacement(%q) = %q, want one ASCII byte", r.Source, got)
		}
	}
}

// ---------------------------------------------------------------------------
// TestReduce - Outcome folding
// ---------------------------------------------------------------------------

func TestReduce(t *testing.T) {
	t.Parallel()

	raw := func(s string) Outcome { return Outcome{Tokens: []Token{lit(s)}} }
	conv := func(s string) Outcome { return Outcome{Converted: true, Tokens: []Token{mk(), lit(s)}} }

	tests := []struct {
		name          string
		in            []Outcome
		wantOK        bool
		wantConverted bool
		wantTokens    int
	}{
		{"empty sequence", nil, false, false, 0},
		{"single raw", []Outcome{raw("a")}, true, false, 1},
		{"raw + raw", []Outcome{raw("a"), raw("b")}, true, false, 2},
		{"raw + converted", []Outcome{raw("a"), conv(",")}, true, true, 3},
		{"converted + raw", []Outcome{conv(","), raw("a")}, true, true, 3},
		{"converted + converted", []Outcome{conv(","), conv(".")}, true, true, 4},
		{"converted in the middle", []Outcome{raw("a"), conv(","), raw("b")}, true, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Reduce(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Reduce() ok = %v, want %v", ok, tt.wantOK)
			}
			if got.Converted != tt.wantConverted {
				t.Errorf("Reduce().Converted = %v, want %v", got.Converted, tt.wantConverted)
			}
			if len(got.Tokens) != tt.wantTokens {
				t.Errorf("len(Reduce().Tokens) = %d, want %d", len(got.Tokens), tt.wantTokens)
			}
		})
	}
}

func TestReduce_PreservesOrder(t *testing.T) {
	t.Parallel()

	got, _ := Reduce([]Outcome{Map('a'), Map('，'), Map('b')})
	want := []Token{lit("a"), mk(), mk(), lit(","), mk(), lit("b")}
	if len(got.Tokens) != len(want) {
		t.Fatalf("tokens = %+v, want %+v", got.Tokens, want)
	}
	for i := range want {
		if got.Tokens[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, got.Tokens[i], want[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestMerge - Spacing law
// ---------------------------------------------------------------------------

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{"empty stream", nil, ""},
		{"only a marker", []Token{mk()}, ""},
		{"literals only", []Token{lit("a"), lit("b")}, "ab"},
		{"lone marker between letters", []Token{lit("a"), mk(), lit("b")}, "a b"},
		{"two markers collapse", []Token{lit("a"), mk(), mk(), lit("b")}, "ab"},
		{"three markers collapse", []Token{lit("a"), mk(), mk(), mk(), lit("b")}, "ab"},
		{"leading marker suppressed", []Token{mk(), lit("a")}, "a"},
		{"trailing marker suppressed", []Token{lit("a"), mk()}, "a"},
		{"whitespace before marker", []Token{lit("a "), mk(), lit("b")}, "a b"},
		{"whitespace after marker", []Token{lit("a"), mk(), lit(" b")}, "a b"},
		{"newline after marker", []Token{lit("a"), mk(), lit("\nb")}, "a\nb"},
		{"ideographic space after marker", []Token{lit("a"), mk(), lit("　b")}, "a　b"},
		{"consecutive lone markers", []Token{lit("a"), mk(), lit("b"), mk(), lit("c")}, "a b c"},
		{"inserted space counts as whitespace", []Token{lit("a"), mk(), lit(""), mk(), lit("b")}, "a b"},
		{"multibyte neighbours", []Token{lit("你"), mk(), lit("好")}, "你 好"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Merge(tt.tokens); got != tt.want {
				t.Errorf("Merge() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert - Full pipeline
// ---------------------------------------------------------------------------

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"comma and exclamation", "你好，世界！", "你好, 世界!", true},
		{"quotes then parenthesis with space", "“Rust” （2024）", `"Rust" (2024)`, true},
		{"quotes abutting parenthesis", "“Rust”（2024）", `"Rust"(2024)`, true},
		{"no punctuation", "Hello, world", "", false},
		{"empty input", "", "", false},
		{"cjk without punctuation", "你好世界", "", false},
		{
			"mixed sentence",
			"你好，世界！“Rust” （2024）。“Rust”（2024）",
			`你好, 世界!"Rust" (2024)."Rust"(2024)`,
			true,
		},
		{"colon between words", "a：b", "a: b", true},
		{"colon before quote", "他说：“好”", `他说:"好"`, true},
		{"ellipsis collapses both sides", "等等…然后", "等等...然后", true},
		{"angle quote as comparison", "x》y", "x > y", true},
		{"existing space kept single", "你好， 世界", "你好, 世界", true},
		{"newline kept", "你好，\n世界", "你好,\n世界", true},
		{"leading parenthesis", "（注）", "(注)", true},
		{"trailing period", "好。", "好.", true},
		{"repeated question marks", "？？", "??", true},
		{"brackets", "【重要】通知", "[重要] 通知", true},
		{"enumeration comma", "甲、乙、丙", "甲, 乙, 丙", true},
		{"semicolon", "前；后", "前; 后", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Convert(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Convert(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvert_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"你好，世界！",
		"“Rust”（2024）",
		"《三体》：刘慈欣……",
		"问？答！【完】",
		"plain ascii, untouched.",
	}

	for _, in := range inputs {
		once, ok := Convert(in)
		if !ok {
			once = in
		}
		if again, ok := Convert(once); ok {
			t.Errorf("Convert(Convert(%q)) changed again: %q", in, again)
		}
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	if Contains("abc, def.") {
		t.Error("Contains() = true for ASCII punctuation")
	}
	if !Contains("abc，def") {
		t.Error("Contains() = false for full-width comma")
	}
	if Contains("") {
		t.Error("Contains(\"\") = true")
	}
}

// ---------------------------------------------------------------------------
// FuzzConvert - Idempotence and completeness
// ---------------------------------------------------------------------------

func FuzzConvert(f *testing.F) {
	for _, seed := range []string{"你好，世界！", "“Rust”（2024）", "a：b", "", "…", " ，", "x\x00，y"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, in string) {
		out, ok := Convert(in)
		if !ok {
			if out != "" {
				t.Fatalf("Convert(%q) returned %q with ok=false", in, out)
			}
			if Contains(in) {
				t.Fatalf("Convert(%q) reported no change for convertible input", in)
			}
			return
		}
		if Contains(out) {
			t.Fatalf("Convert(%q) = %q still has full-width punctuation", in, out)
		}
		if _, again := Convert(out); again {
			t.Fatalf("Convert is not idempotent for %q", in)
		}
		if strings.Contains(out, "  ") && !strings.Contains(in, "  ") {
			t.Fatalf("Convert(%q) = %q introduced a double space", in, out)
		}
	})
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkConvert(b *testing.B) {
	input := strings.Repeat("你好，世界！“Rust”（2024）。", 200)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Convert(input)
	}
}
