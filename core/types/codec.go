// Copyright 2024 The Lumina Authors
// This file is part of the lumina library.
//
// The lumina library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lumina library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lumina library. If not, see <http://www.gnu.org/licenses/>.

// codec.go implements the fixed little-endian, length-prefixed binary
// encoding used throughout the wire format: every field is written at a
// fixed width or as a u64-length-prefixed sequence, applied uniformly
// across transactions, blocks, and state.
package types

import (
	"encoding/binary"
	"errors"
	"io"
)

var errShortRead = errors.New("types: short read decoding binary field")

type encoder struct {
	buf []byte
}

func newEncoder() *encoder { return &encoder{} }

func (e *encoder) bytes() []byte { return e.buf }

func (e *encoder) writeU8(v uint8) { e.buf = append(e.buf, v) }

func (e *encoder) writeU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *encoder) writeU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *encoder) writeFixed(v []byte) { e.buf = append(e.buf, v...) }

// writeBytes emits a u64-length-prefixed byte sequence.
func (e *encoder) writeBytes(v []byte) {
	e.writeU64(uint64(len(v)))
	e.buf = append(e.buf, v...)
}

// writeString emits a u64-prefixed UTF-8 string.
func (e *encoder) writeString(s string) { e.writeBytes([]byte(s)) }

func (e *encoder) writeBool(b bool) {
	if b {
		e.writeU8(1)
	} else {
		e.writeU8(0)
	}
}

type decoder struct {
	buf []byte
	pos int
}

func newDecoder(b []byte) *decoder { return &decoder{buf: b} }

func (d *decoder) remaining() int { return len(d.buf) - d.pos }

func (d *decoder) readU8() (uint8, error) {
	if d.remaining() < 1 {
		return 0, errShortRead
	}
	v := d.buf[d.pos]
	d.pos++
	return v, nil
}

func (d *decoder) readU16() (uint16, error) {
	if d.remaining() < 2 {
		return 0, errShortRead
	}
	v := binary.LittleEndian.Uint16(d.buf[d.pos:])
	d.pos += 2
	return v, nil
}

func (d *decoder) readU64() (uint64, error) {
	if d.remaining() < 8 {
		return 0, errShortRead
	}
	v := binary.LittleEndian.Uint64(d.buf[d.pos:])
	d.pos += 8
	return v, nil
}

func (d *decoder) readFixed(n int) ([]byte, error) {
	if d.remaining() < n {
		return nil, errShortRead
	}
	out := make([]byte, n)
	copy(out, d.buf[d.pos:d.pos+n])
	d.pos += n
	return out, nil
}

func (d *decoder) readBytes() ([]byte, error) {
	n, err := d.readU64()
	if err != nil {
		return nil, err
	}
	return d.readFixed(int(n))
}

func (d *decoder) readString() (string, error) {
	b, err := d.readBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *decoder) readBool() (bool, error) {
	v, err := d.readU8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (d *decoder) done() bool { return d.remaining() == 0 }

// writeAll lets callers stream an encoded buffer to an io.Writer without
// changing the in-memory encoder above. There is no io.Reader counterpart.
func writeAll(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}
