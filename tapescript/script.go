package tapescript

import (
	"github.com/reusee/tapegen/tapegen"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Compile executes a script against a fresh builder with a tape of size
// cells. src is anything starlark accepts as source: string, []byte or
// io.Reader.
//
// Script errors are returned. Generator invariant violations panic like
// they do for Go callers.
func Compile(name string, src any, size int) (*tapegen.Builder, error) {
	builder := tapegen.NewBuilder(size)
	thread := &starlark.Thread{
		Name: name,
	}
	if _, err := starlark.ExecFileOptions(
		fileOptions,
		thread,
		name,
		src,
		predeclared(builder),
	); err != nil {
		return nil, err
	}
	return builder, nil
}
