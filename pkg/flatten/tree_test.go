package flatten

import "testing"

func TestRenderTree(t *testing.T) {
	paths := []string{
		"README.md",
		"src/main.go",
		"src/util/helper.go",
		"docs/intro.md",
	}
	got := RenderTree("myrepo", paths)
	want := "myrepo/\n" +
		"├── docs/\n" +
		"│   └── intro.md\n" +
		"├── src/\n" +
		"│   ├── util/\n" +
		"│   │   └── helper.go\n" +
		"│   └── main.go\n" +
		"└── README.md\n"
	if got != want {
		t.Errorf("RenderTree mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTreeEmpty(t *testing.T) {
	if got := RenderTree("empty", nil); got != "empty/\n" {
		t.Errorf("RenderTree(empty) = %q", got)
	}
}

func TestRenderTreeDirectoriesFirst(t *testing.T) {
	got := RenderTree("r", []string{"aaa.txt", "zzz/inner.txt"})
	want := "r/\n" +
		"├── zzz/\n" +
		"│   └── inner.txt\n" +
		"└── aaa.txt\n"
	if got != want {
		t.Errorf("RenderTree mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
