package cmds

import (
	"fmt"
	"strings"
)

// Var defines name taking one argument, and name+"." resetting to zero.
func Var[T any](name string) *T {
	var value T
	var zero T

	Define(name, Func(func(v T) {
		value = v
	}).Args(argName(name)))

	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name setting true and "!"+name setting false.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))

	return &value
}

// Collect defines name appending its argument each time it is given.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Args(argName(name)).Desc("repeatable"))
	return &value
}

// Describe sets the usage description of a defined command.
func Describe(name string, desc string) {
	command, ok := GlobalExecutor.commands[name]
	if !ok {
		panic(fmt.Errorf("no such command: %s", name))
	}
	if command.Description != "" {
		desc = desc + " (" + command.Description + ")"
	}
	command.Description = desc
}

func argName(name string) string {
	return strings.TrimLeft(name, "-")
}
