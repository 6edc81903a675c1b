package idcompressor

// ParseStableId parses a StableId from the standard 36-character
// hyphenated form: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func ParseStableId(s string) (StableId, error) {
	if len(s) != 36 {
		return Nil, &ParseError{Input: s, Msg: "expected 36-character hyphenated format"}
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return Nil, &ParseError{Input: s, Msg: "expected hyphens at positions 8, 13, 18, 23"}
	}
	return parseHex(s, 0)
}

// MustParseStableId is like ParseStableId but panics if the string cannot
// be parsed. It simplifies initialization of global variables holding
// StableIds in tests and fixtures.
func MustParseStableId(s string) StableId {
	id, err := ParseStableId(s)
	if err != nil {
		panic(err)
	}
	return id
}

// StableIdFromBytes creates a StableId from a 16-byte slice.
func StableIdFromBytes(b []byte) (StableId, error) {
	if len(b) != 16 {
		return Nil, &LengthError{Got: len(b), Want: "16 bytes"}
	}
	return StableId(b), nil
}

// parseHex decodes the 32 hex digits from s starting at offset, skipping
// the hyphens at the standard positions.
func parseHex(s string, offset int) (StableId, error) {
	var id StableId
	// groups: 8-4-4-4-12 hex digits
	// byte positions in StableId: 0-3, 4-5, 6-7, 8-9, 10-15
	src := offset
	for i := range 16 {
		// skip hyphens
		if src-offset == 8 || src-offset == 13 || src-offset == 18 || src-offset == 23 {
			src++
		}
		hi, ok1 := fromHexChar(s[src])
		lo, ok2 := fromHexChar(s[src+1])
		if !ok1 || !ok2 {
			return Nil, &ParseError{Input: s, Msg: "invalid hex character"}
		}
		id[i] = hi<<4 | lo
		src += 2
	}
	return id, nil
}

// fromHexChar converts a hex character to its value.
func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
