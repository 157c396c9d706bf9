package cmds

import (
	"fmt"
	"reflect"
)

// Command is a function called with the arguments that follow its name, or
// a set of sub commands that become visible after it.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	ArgNames    []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Args names the function arguments in usage output.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = names
	return c
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	if fnType.IsVariadic() {
		panic(fmt.Errorf("variadic function not supported: %T", fn))
	}
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("must return error, got %v", fnType.Out(0)))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value"))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

func (c *Command) argNames() (ret []string) {
	if !c.Func.IsValid() {
		return nil
	}
	fnType := c.Func.Type()
	for i := range fnType.NumIn() {
		name := fnType.In(i).String()
		if i < len(c.ArgNames) {
			name = c.ArgNames[i]
		}
		if fnType.In(i).Kind() == reflect.Pointer {
			name += "?"
		}
		ret = append(ret, name)
	}
	return
}
