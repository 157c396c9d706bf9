package tapevm

import (
	"encoding/gob"
	"fmt"
	"io"
)

func (m *Machine) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return nil
}

func (m *Machine) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	var restored Machine
	if err := dec.Decode(&restored); err != nil {
		return err
	}
	if len(restored.Data) == 0 {
		return ErrZeroSize
	}
	if restored.Index < 0 || restored.Index >= len(restored.Data) {
		return fmt.Errorf("%w: index %d outside tape of %d cells",
			ErrBadSnapshot, restored.Index, len(restored.Data))
	}
	*m = restored
	return nil
}
