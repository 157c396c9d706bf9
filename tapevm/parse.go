package tapevm

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedClose = errors.New("unmatched closing bracket")
	ErrUnmatchedOpen  = errors.New("unmatched opening bracket")
)

// Parse builds the instruction tree of source. Characters outside the
// instruction set are comments.
func Parse(source string) (Program, error) {
	var stack []Program
	var openAt []int
	current := Program{}

	for i := 0; i < len(source); i++ {
		c := source[i]
		switch c {

		case '[':
			stack = append(stack, current)
			openAt = append(openAt, i)
			current = Program{}

		case ']':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedClose, i)
			}
			parent := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			openAt = openAt[:len(openAt)-1]
			current = append(parent, Instruction{
				Op:   OpRepeat,
				Body: current,
			})

		default:
			if op, ok := leafOp(c); ok {
				current = append(current, Instruction{Op: op})
			}

		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedOpen, openAt[len(openAt)-1])
	}

	return current, nil
}

func MustParse(source string) Program {
	program, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return program
}
