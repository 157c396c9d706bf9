package tapegen

import "github.com/reusee/tapegen/tapevm"

// Emitter accumulates raw program text.
type Emitter struct {
	source []byte
}

func (e *Emitter) emit(c byte) {
	e.source = append(e.source, c)
}

func (e *Emitter) emitRun(c byte, n int) {
	for range n {
		e.source = append(e.source, c)
	}
}

func (e *Emitter) Increment() {
	e.emit('+')
}

func (e *Emitter) Decrement() {
	e.emit('-')
}

func (e *Emitter) ShiftLeft() {
	e.emit('<')
}

func (e *Emitter) ShiftRight() {
	e.emit('>')
}

func (e *Emitter) Read() {
	e.emit(',')
}

func (e *Emitter) Write() {
	e.emit('.')
}

// Add emits value increments, or 256-value decrements when that is shorter.
func (e *Emitter) Add(value uint8) {
	if value > 128 {
		e.emitRun('-', 256-int(value))
	} else {
		e.emitRun('+', int(value))
	}
}

// Sub emits value decrements, or 256-value increments when that is shorter.
func (e *Emitter) Sub(value uint8) {
	if value > 128 {
		e.emitRun('+', 256-int(value))
	} else {
		e.emitRun('-', int(value))
	}
}

func (e *Emitter) Zero() {
	e.Repeat(e.Decrement)
}

func (e *Emitter) Repeat(body func()) {
	e.emit('[')
	body()
	e.emit(']')
}

func (e *Emitter) Source() string {
	return string(e.source)
}

func (e *Emitter) Len() int {
	return len(e.source)
}

func (e *Emitter) Compile() (tapevm.Program, error) {
	return tapevm.Parse(string(e.source))
}
