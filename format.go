package idcompressor

// String returns the canonical 36-character hyphenated lowercase
// representation: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (id StableId) String() string {
	var buf [36]byte
	encodeHex(buf[:], id)
	return string(buf[:])
}

// AppendText appends the textual (36-char hyphenated) representation of
// id to b. It implements encoding.TextAppender.
func (id StableId) AppendText(b []byte) ([]byte, error) {
	b = grow(b, 36)
	encodeHex(b[len(b)-36:], id)
	return b, nil
}

// AppendBinary appends the raw 16-byte representation of id to b.
// It implements encoding.BinaryAppender.
func (id StableId) AppendBinary(b []byte) ([]byte, error) {
	return append(b, id[:]...), nil
}

// MarshalText returns the 36-character hyphenated representation.
// It implements encoding.TextMarshaler.
func (id StableId) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], id)
	return buf[:], nil
}

// UnmarshalText parses a StableId from text (strict 36-char format).
// It implements encoding.TextUnmarshaler.
func (id *StableId) UnmarshalText(data []byte) error {
	parsed, err := ParseStableId(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary returns the raw 16-byte representation.
// It implements encoding.BinaryMarshaler.
func (id StableId) MarshalBinary() ([]byte, error) {
	b := make([]byte, 16)
	copy(b, id[:])
	return b, nil
}

// UnmarshalBinary sets id from a 16-byte slice.
// It implements encoding.BinaryUnmarshaler.
func (id *StableId) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return &LengthError{Got: len(data), Want: "16 bytes"}
	}
	copy(id[:], data)
	return nil
}

const hexDigits = "0123456789abcdef"

// encodeHex writes the 36-character hyphenated form of id into buf, which
// must be exactly 36 bytes long.
func encodeHex(buf []byte, id StableId) {
	pos := 0
	for i, b := range id {
		buf[pos] = hexDigits[b>>4]
		buf[pos+1] = hexDigits[b&0x0f]
		pos += 2
		switch i {
		case 3, 5, 7, 9:
			buf[pos] = '-'
			pos++
		}
	}
}

// grow extends b by n bytes and returns the extended slice. The new
// bytes are zero only when a reallocation happens; callers overwrite them.
func grow(b []byte, n int) []byte {
	l := len(b)
	if cap(b)-l >= n {
		return b[:l+n]
	}
	newBuf := make([]byte, l+n, (l+n)*2)
	copy(newBuf, b)
	return newBuf
}
