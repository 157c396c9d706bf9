package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatalf("got %v", a)
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatalf("got %v", a)
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatalf("got %v", bar)
	}
	if baz != 42 {
		t.Fatalf("got %v", baz)
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("got %v", n)
	}
	if s != "foo" {
		t.Fatalf("got %q", s)
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatalf("got %v", n)
	}
	if s != "" {
		t.Fatalf("got %q", s)
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("got %v", n)
	}
	if s != "" {
		t.Fatalf("got %q", s)
	}

}

func TestAssignForm(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("-n", Func(func(i int) {
		n = i
	}))
	executor.Define("-s", Func(func(str string) {
		s = str
	}))
	if err := executor.Execute([]string{"-n=42", "-s=a=b"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("got %v", n)
	}
	if s != "a=b" {
		t.Fatalf("got %v", s)
	}

	err := executor.Execute([]string{"-x=1"})
	if !strings.Contains(err.Error(), "unknown command: -x=1") {
		t.Fatalf("got %v", err)
	}
}

func TestFallback(t *testing.T) {
	executor := NewExecutor()
	var scripts, programs []string
	executor.Define("-script", Func(func(path string) {
		scripts = append(scripts, path)
	}))
	executor.Fallback(Func(func(path string) {
		if strings.HasSuffix(path, ".star") {
			scripts = append(scripts, path)
		} else {
			programs = append(programs, path)
		}
	}))

	if err := executor.Execute([]string{
		"a.star", "-script", "b.txt", "c.b",
	}); err != nil {
		t.Fatal(err)
	}
	if str := strings.Join(scripts, ","); str != "a.star,b.txt" {
		t.Fatalf("got %s", str)
	}
	if str := strings.Join(programs, ","); str != "c.b" {
		t.Fatalf("got %s", str)
	}

	// flags are never taken as files
	err := executor.Execute([]string{"-nope"})
	if !strings.Contains(err.Error(), "unknown command: -nope") {
		t.Fatalf("got %v", err)
	}
}

func TestArgumentErrors(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-size", Func(func(n int) {}))
	executor.Define("-fail", Func(func() error {
		return errors.New("boom")
	}))

	err := executor.Execute([]string{"-size", "x"})
	if !strings.Contains(err.Error(), "-size: convert x to int") {
		t.Fatalf("got %v", err)
	}
	err = executor.Execute([]string{"-size"})
	if !strings.Contains(err.Error(), "expecting int argument") {
		t.Fatalf("got %v", err)
	}
	err = executor.Execute([]string{"-fail"})
	if !strings.Contains(err.Error(), "-fail: boom") {
		t.Fatalf("got %v", err)
	}
}
