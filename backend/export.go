package backend

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/0xsoniclabs/tracy"
	"github.com/golang/snappy"
)

// Export writes all entries of the store to out as a snappy-compressed
// stream of length-prefixed key/value pairs, in ascending key order.
func Export(store Store, out io.Writer) error {
	zone := tracy.ZoneBegin("backend::export")
	defer zone.End()

	w := snappy.NewBufferedWriter(out)
	var lenBuf [binary.MaxVarintLen64]byte
	write := func(data []byte) error {
		n := binary.PutUvarint(lenBuf[:], uint64(len(data)))
		if _, err := w.Write(lenBuf[:n]); err != nil {
			return err
		}
		_, err := w.Write(data)
		return err
	}
	err := store.Iterate(func(key, value []byte) error {
		if err := write(key); err != nil {
			return err
		}
		return write(value)
	})
	return errors.Join(err, w.Close())
}

// Import replays a stream produced by Export into the store.
func Import(store Store, in io.Reader) error {
	zone := tracy.ZoneBegin("backend::import")
	defer zone.End()

	r := bufio.NewReader(snappy.NewReader(in))
	read := func() ([]byte, error) {
		length, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, err
		}
		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}
		return data, nil
	}
	for {
		key, err := read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("corrupted export stream: %w", err)
		}
		value, err := read()
		if err != nil {
			return fmt.Errorf("corrupted export stream: %w", err)
		}
		if err := store.Put(key, value); err != nil {
			return err
		}
	}
}
