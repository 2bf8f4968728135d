package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns captured stdout.
// Flag variables are package-level, so each test resets them.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func resetFlags() {
	templatesDir = ""
	createPackageAuthor = ""
	createPackageOutput = ""
	createClassModule = ""
	createClassOutput = ""
	createClassParams = ""
	createClassBody = ""
	createTestModule = ""
	createTestOutput = ""
	renderVars = nil
	renderOut = ""
}

func tempStoreArgs(t *testing.T) []string {
	t.Helper()
	return []string{"--templates-dir", filepath.Join(t.TempDir(), "templates")}
}

func TestListCommand(t *testing.T) {
	args := append([]string{"list"}, tempStoreArgs(t)...)

	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}

	for _, want := range []string{"python/package.py", "python/class.py", "python/test.py"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %s:\n%s", want, out)
		}
	}
}

func TestCreatePackageCommand(t *testing.T) {
	outDir := t.TempDir()
	args := append([]string{
		"create-package", "mypkg",
		"--author", "Test Author",
		"--output", outDir,
	}, tempStoreArgs(t)...)

	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("create-package error = %v", err)
	}
	if !strings.Contains(out, "Created package 'mypkg'") {
		t.Errorf("unexpected output:\n%s", out)
	}

	initFile := filepath.Join(outDir, "mypkg", "__init__.py")
	content, err := os.ReadFile(initFile)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", initFile, err)
	}
	if !strings.Contains(string(content), "Test Author") {
		t.Error("generated package should carry the author")
	}

	if _, err := os.Stat(filepath.Join(outDir, "mypkg", "main.py")); err != nil {
		t.Errorf("expected main.py to exist: %v", err)
	}
}

func TestCreateClassCommand(t *testing.T) {
	outDir := t.TempDir()
	args := append([]string{
		"create-class", "OrderItem",
		"--output", outDir,
	}, tempStoreArgs(t)...)

	if _, err := execute(t, args...); err != nil {
		t.Fatalf("create-class error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(outDir, "order_item.py"))
	if err != nil {
		t.Fatalf("expected order_item.py: %v", err)
	}
	if !strings.Contains(string(content), "class OrderItem:") {
		t.Error("generated file should declare class OrderItem")
	}
	if strings.Contains(string(content), "$") {
		t.Error("generated file should have no unresolved placeholders")
	}
}

func TestCreateClassCommandConstructorFlags(t *testing.T) {
	outDir := t.TempDir()
	args := append([]string{
		"create-class", "Point",
		"--output", outDir,
		"--constructor-params", ", x, y",
		"--constructor-body", "        self.x = x\n        self.y = y",
	}, tempStoreArgs(t)...)

	if _, err := execute(t, args...); err != nil {
		t.Fatalf("create-class error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(outDir, "point.py"))
	if err != nil {
		t.Fatalf("expected point.py: %v", err)
	}
	if !strings.Contains(string(content), "def __init__(self, x, y):") {
		t.Error("constructor params should be substituted verbatim")
	}
	if !strings.Contains(string(content), "self.y = y") {
		t.Error("constructor body should be substituted verbatim")
	}
}

func TestCreateTestCommand(t *testing.T) {
	outDir := t.TempDir()
	args := append([]string{
		"create-test", "OrderItem",
		"--output", outDir,
	}, tempStoreArgs(t)...)

	if _, err := execute(t, args...); err != nil {
		t.Fatalf("create-test error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(outDir, "test_order_item.py"))
	if err != nil {
		t.Fatalf("expected test_order_item.py: %v", err)
	}
	if !strings.Contains(string(content), "from order_item import OrderItem") {
		t.Error("test file should import the derived module")
	}
}

func TestRenderCommandToStdout(t *testing.T) {
	args := append([]string{
		"render", "python/class.py",
		"--var", "class_name=Demo",
		"--var", "module_name=demo",
		"--var", "constructor_params=",
		"--var", "constructor_body=        pass",
	}, tempStoreArgs(t)...)

	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, "class Demo:") {
		t.Errorf("render output missing class declaration:\n%s", out)
	}
}

func TestRenderCommandMissingVariable(t *testing.T) {
	args := append([]string{
		"render", "python/class.py",
		"--var", "class_name=Demo",
	}, tempStoreArgs(t)...)

	_, err := execute(t, args...)
	if err == nil {
		t.Fatal("render should fail when a placeholder has no value")
	}
	if !strings.Contains(err.Error(), "placeholder") {
		t.Errorf("error should name the missing placeholder, got: %v", err)
	}
}

func TestRenderCommandUnknownTemplate(t *testing.T) {
	args := append([]string{
		"render", "python/clas.py",
		"--var", "class_name=Demo",
	}, tempStoreArgs(t)...)

	out, err := execute(t, args...)
	if err == nil {
		t.Fatal("render should fail for an unknown template")
	}
	if !strings.Contains(out, "python/class.py") {
		t.Errorf("expected a fuzzy suggestion for python/class.py, got:\n%s", out)
	}
}

func TestRenderCommandInvalidVar(t *testing.T) {
	args := append([]string{
		"render", "python/class.py",
		"--var", "novalue",
	}, tempStoreArgs(t)...)

	if _, err := execute(t, args...); err == nil {
		t.Fatal("render should reject --var without name=value shape")
	}
}

func TestRenderCommandToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out", "demo.py")
	args := append([]string{
		"render", "python/test.py",
		"--var", "class_name=Demo",
		"--var", "module_name=demo",
		"--out", dest,
	}, tempStoreArgs(t)...)

	if _, err := execute(t, args...); err != nil {
		t.Fatalf("render error = %v", err)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("expected rendered file: %v", err)
	}
	if !strings.Contains(string(content), "from demo import Demo") {
		t.Error("rendered file content mismatch")
	}
}

func TestUnknownTemplateStoreDirIsCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested", "templates")

	if _, err := execute(t, "list", "--templates-dir", dir); err != nil {
		t.Fatalf("list error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "python", "class.py")); err != nil {
		t.Errorf("store should be created and seeded on first use: %v", err)
	}
}
