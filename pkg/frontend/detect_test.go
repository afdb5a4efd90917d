package frontend

import (
	"testing"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

func TestDetectByFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		source   string
		want     uir.Language
	}{
		{"go file", "main.go", "package main", uir.LangGo},
		{"rust file", "lib.rs", "fn main() {}", uir.LangRust},
		{"fsharp script", "build.fsx", "let x = 1", uir.LangFSharp},
		{"python file", "app.py", "def main():\n    pass\n", uir.LangPython},
		{"javascript file", "index.js", "const x = 1;", uir.LangJavaScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Detect(tt.filename, []byte(tt.source))
			if !ok {
				t.Fatalf("Detect(%q) fell through to the default", tt.filename)
			}

			if got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectByContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   uir.Language
	}{
		{
			"csharp",
			"using System;\n\nnamespace App\n{\n    class Program { }\n}\n",
			uir.LangCSharp,
		},
		{
			"fsharp",
			"module Math\n\nlet add x y = x + y\n",
			uir.LangFSharp,
		},
		{
			"vb",
			"Public Sub Main()\nEnd Sub\n",
			uir.LangVB,
		},
		{
			"rust",
			"fn main() {\n    let mut total = 0;\n}\n",
			uir.LangRust,
		},
		{
			"go",
			"package main\n\nfunc main() {}\n",
			uir.LangGo,
		},
		{
			"cpp",
			"class Widget {\npublic:\n    int size;\n};\n",
			uir.LangCPP,
		},
		{
			"c",
			"#include <stdio.h>\n\nint main(void) { return 0; }\n",
			uir.LangC,
		},
		{
			"javascript",
			"const greeting = 'hello';\n",
			uir.LangJavaScript,
		},
		{
			"python",
			"import os\n\n\ndef main():\n    pass\n",
			uir.LangPython,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Detect("", []byte(tt.source))
			if !ok {
				t.Fatalf("content detection fell through for %s", tt.name)
			}

			if got != tt.want {
				t.Errorf("Detect = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectFallsBackToJavaScript(t *testing.T) {
	t.Parallel()

	got, ok := Detect("", []byte("plain words, no syntax at all"))
	if ok {
		t.Error("expected the fallback to report low confidence")
	}

	if got != uir.LangJavaScript {
		t.Errorf("fallback language = %s, want javascript", got)
	}
}
