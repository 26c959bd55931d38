package glob

import "testing"

func TestMatchBasenameScope(t *testing.T) {
	// Patterns without a slash only look at the final segment.
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.js", "index.js", true},
		{"*.js", "src/index.js", true},
		{"*.js", "src/util/index.js", true},
		{"*.js", "index.jsx", false},
		{"*.js", "src/index.jsx", false},
		{"index.?s", "src/index.js", true},
		{"index.?s", "src/index.mjs", false},
		{"README", "docs/README", true},
		{"README", "docs/README.md", false},
	}
	for _, tc := range cases {
		if got := Match(tc.pattern, tc.path); got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestMatchDoubleStar(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/*.js", "index.js", true},
		{"**/*.js", "src/index.js", true},
		{"**/*.js", "src/util/index.js", true},
		{"**/*.js", "src/index.ts", false},
		{"src/**", "src/index.js", true},
		{"src/**", "src/util/index.js", true},
		{"src/**", "lib/index.js", false},
		{"src/**", "mysrc/index.js", false},
		{"a/**/b", "a/b", true},
		{"a/**/b", "a/x/b", true},
		{"a/**/b", "a/x/y/b", true},
		{"a/**/b", "a/xb", false},
	}
	for _, tc := range cases {
		if got := Match(tc.pattern, tc.path); got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestMatchAlternation(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.{js,ts}", "index.js", true},
		{"*.{js,ts}", "index.ts", true},
		{"*.{js,ts}", "index.py", false},
		{"*.{js,{ts,tsx}}", "app.tsx", true},
		{"*.{js,{ts,tsx}}", "app.ts", true},
		{"*.{js,{ts,tsx}}", "app.rb", false},
		{"src/{a,b}/*.go", "src/a/main.go", true},
		{"src/{a,b}/*.go", "src/c/main.go", false},
	}
	for _, tc := range cases {
		if got := Match(tc.pattern, tc.path); got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestMatchCharacterClass(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"file[0-9].txt", "file1.txt", true},
		{"file[0-9].txt", "filex.txt", false},
		{"file[!0-9].txt", "filex.txt", true},
		{"file[!0-9].txt", "file1.txt", false},
		{"file[]x].txt", "file].txt", true},
		{"file[]x].txt", "filex.txt", true},
		{"file[]x].txt", "filey.txt", false},
	}
	for _, tc := range cases {
		if got := Match(tc.pattern, tc.path); got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestMatchLiteralSpecials(t *testing.T) {
	// Characters special to the regexp engine must be matched literally.
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"a.b", "a.b", true},
		{"a.b", "axb", false},
		{"c++/*.h", "c++/vec.h", true},
		{"(notes)|draft$", "(notes)|draft$", true},
	}
	for _, tc := range cases {
		if got := Match(tc.pattern, tc.path); got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestMatchUnterminatedBrace(t *testing.T) {
	// An unmatched `{` degrades to a literal brace.
	if !Match("a{b", "a{b") {
		t.Error("unterminated brace should match itself literally")
	}
	if Match("a{b", "ab") {
		t.Error("unterminated brace must not vanish")
	}
	if !Match("*.{js", "x.{js") {
		t.Error("wildcard before unterminated brace should still work")
	}
}

func TestMatchFullAnchoring(t *testing.T) {
	if Match("*.js", "index.jsx") {
		t.Error("*.js must not match a .jsx suffix")
	}
	if Match("src/**", "src") {
		t.Error("src/** requires a non-empty continuation under src/")
	}
	if Match("index", "src/index.js") {
		t.Error("basename pattern must cover the whole final segment")
	}
}

func TestCompileReuse(t *testing.T) {
	m, err := Compile("**/*.go")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !m.Match("pkg/glob/glob.go") {
		t.Error("compiled matcher should match nested .go file")
	}
	if m.Match("pkg/glob/glob.py") {
		t.Error("compiled matcher must reject other extensions")
	}
}
