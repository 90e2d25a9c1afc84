package strvals

import (
	"bytes"
	"encoding/binary"
	"strconv"
)

// Binary form:
//
//	SVL\x01 | u32 count | count × (u32 len | len bytes)
//
// All integers big-endian.  The form depends only on the canonical
// sequence, so Equal values encode identically.

// bodyWriter is satisfied by *bytes.Buffer and *xxhash.Digest.
type bodyWriter interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
}

// writeBody writes count and elements (everything after the header).
// Neither target can fail a write, so errors are dropped.
func writeBody(w bodyWriter, v Values) {
	writeU32BE(w, uint32(v.Len()))
	for s := range v.All() {
		writeU32BE(w, uint32(len(s)))
		_, _ = w.WriteString(s)
	}
}

func writeU32BE(w bodyWriter, n uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], n)
	_, _ = w.Write(b[:])
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Values) MarshalBinary() ([]byte, error) {
	if v.Len() > MaxValues {
		return nil, newErr(ErrCodeLimitSize, "value count exceeds limit")
	}
	size := len(binHdr) + 4
	for s := range v.All() {
		size += 4 + len(s)
	}
	if size > MaxEncodedBytes {
		return nil, newErr(ErrCodeLimitSize, "encoded size exceeds MaxEncodedBytes")
	}
	var buf bytes.Buffer
	buf.Grow(size)
	buf.Write(binHdr)
	writeBody(&buf, v)
	return buf.Bytes(), nil
}

// DecodeBinary parses the output of MarshalBinary.  The input must hold
// exactly one encoded Values; trailing bytes are an error.
func DecodeBinary(b []byte) (Values, error) {
	if len(b) > MaxEncodedBytes {
		return Empty, newErr(ErrCodeLimitSize, "input exceeds MaxEncodedBytes")
	}
	if !bytes.HasPrefix(b, binHdr) {
		return Empty, newErr(ErrCodeBinHdr, "bad header")
	}
	off := len(binHdr)
	count, off, err := readU32BE(b, off)
	if err != nil {
		return Empty, err
	}
	if count > MaxValues {
		return Empty, newErr(ErrCodeLimitSize, "value count exceeds limit")
	}
	// Each element takes at least 4 bytes; reject absurd counts before allocating.
	if int(count) > (len(b)-off)/4 {
		return Empty, newErr(ErrCodeBinFormat, "truncated: count "+strconv.FormatUint(uint64(count), 10)+" exceeds payload")
	}
	out := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		var n uint32
		n, off, err = readU32BE(b, off)
		if err != nil {
			return Empty, err
		}
		if off+int(n) > len(b) {
			return Empty, newErr(ErrCodeBinFormat, "truncated string payload")
		}
		out = append(out, string(b[off:off+int(n)]))
		off += int(n)
	}
	if off != len(b) {
		return Empty, newErr(ErrCodeBinFormat, "trailing bytes after values")
	}
	return FromSlice(out), nil
}

func readU32BE(buf []byte, off int) (uint32, int, error) {
	if off+4 > len(buf) {
		return 0, off, newErr(ErrCodeBinFormat, "truncated u32")
	}
	n := binary.BigEndian.Uint32(buf[off : off+4])
	return n, off + 4, nil
}
