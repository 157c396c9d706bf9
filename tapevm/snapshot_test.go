package tapevm

import (
	"bytes"
	"encoding/gob"
	"errors"
	"testing"
)

func TestSnapshot(t *testing.T) {
	m, err := RunSource(8, ">+++>,.", []byte("ab"))
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	if err := m.Snapshot(buf); err != nil {
		t.Fatal(err)
	}

	var restored Machine
	if err := restored.Restore(buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(restored.Data, m.Data) {
		t.Fatalf("got %v", restored.Data)
	}
	if restored.Index != m.Index {
		t.Fatalf("got %d", restored.Index)
	}
	if !bytes.Equal(restored.Input, m.Input) || !bytes.Equal(restored.Output, m.Output) {
		t.Fatalf("got %v %v", restored.Input, restored.Output)
	}
	if restored.Steps != m.Steps {
		t.Fatalf("got %d", restored.Steps)
	}

	// continue running from the restored state
	restored.Run(MustParse(",."))
	if string(restored.Output) != "ab" {
		t.Fatalf("got %q", restored.Output)
	}
}

func TestRestoreIndexOutOfRange(t *testing.T) {
	for _, index := range []int{-1, 4, 100} {
		buf := new(bytes.Buffer)
		if err := gob.NewEncoder(buf).Encode(Machine{
			Data:  make([]byte, 4),
			Index: index,
		}); err != nil {
			t.Fatal(err)
		}
		m := NewMachine(2, nil)
		err := m.Restore(buf)
		if !errors.Is(err, ErrBadSnapshot) {
			t.Fatalf("index %d: got %v", index, err)
		}
		// the receiver is untouched
		if m.Size() != 2 || m.Index != 0 {
			t.Fatalf("got %v", m)
		}
	}
}
