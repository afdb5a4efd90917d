package frontend

import (
	"context"
	"testing"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

func TestFSharpParse(t *testing.T) {
	t.Parallel()

	source := `module Math

type Person = { Name: string }

let add x y = x + y
let version = 1
`

	parser := &fsharpParser{}

	root, err := parser.Parse(context.Background(), "math.fs", []byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if root.ID != "fsharp_program" || root.Name != "fsharp_program" {
		t.Fatalf("unexpected root: id=%q name=%q", root.ID, root.Name)
	}

	if root.Loc == nil || root.Loc.EndLine != 6 {
		t.Errorf("unexpected root location %+v", root.Loc)
	}

	modules := findByName(root, uir.ModuleType(), "Math")
	if len(modules) != 1 || modules[0].ID != "module_Math" {
		t.Errorf("module not lifted: %+v", modules)
	}

	types := findByName(root, uir.ClassType(), "Person")
	if len(types) != 1 || types[0].ID != "type_Person" {
		t.Errorf("type not lifted: %+v", types)
	}

	fns := findByName(root, uir.FunctionType(), "add")
	if len(fns) != 1 {
		t.Fatalf("expected 1 function, got %d", len(fns))
	}

	if len(fns[0].Children) != 2 || fns[0].Children[0].Name != "x" || fns[0].Children[1].Name != "y" {
		t.Errorf("unexpected parameters %+v", fns[0].Children)
	}

	vars := findByName(root, uir.VariableType(), "version")
	if len(vars) != 1 {
		t.Fatalf("expected 1 value binding, got %d", len(vars))
	}

	if value, ok := vars[0].Metadata.StringAnnotation("value"); !ok || value != "1" {
		t.Errorf("value annotation = %q, %v", value, ok)
	}
}

func TestFSharpFunctionNotDuplicatedAsBinding(t *testing.T) {
	t.Parallel()

	parser := &fsharpParser{}

	root, err := parser.Parse(context.Background(), "", []byte("let add x y = x + y\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if got := len(findByName(root, uir.FunctionType(), "add")); got != 1 {
		t.Errorf("expected 1 function, got %d", got)
	}

	if got := len(findByName(root, uir.VariableType(), "add")); got != 0 {
		t.Errorf("function header also lifted as a value binding")
	}
}

func TestFSharpEmptySource(t *testing.T) {
	t.Parallel()

	parser := &fsharpParser{}

	_, err := parser.Parse(context.Background(), "empty.fs", nil)
	if err == nil {
		t.Fatal("expected an error for empty source")
	}
}
