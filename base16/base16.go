// Package base16 implements the RFC 4648 §8 hexadecimal encoding.
//
// Every byte maps to exactly two characters, most-significant nibble
// first. Encoding selects between the lower-case and upper-case
// alphabets; decoding accepts both. All operations are pure, stateless,
// and safe for concurrent use.
package base16

// Digit tables are fixed so the byte-to-character mapping can never be
// routed through a locale-sensitive formatter.
var (
	lowerTable = [16]byte{
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		'a', 'b', 'c', 'd', 'e', 'f',
	}
	upperTable = [16]byte{
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		'A', 'B', 'C', 'D', 'E', 'F',
	}
)

// Encode returns the hex representation of src. The result has exactly
// 2*len(src) characters drawn from 0-9 and a-f, or A-F when upper is
// true. An empty (non-nil) src yields "".
//
// Encode fails with ErrNilBuffer when src is nil.
func Encode(src []byte, upper bool) (string, error) {
	if src == nil {
		return "", ErrNilBuffer
	}
	return encodeRange(src, 0, len(src), upper), nil
}

// EncodeRange encodes the sub-range src[offset : offset+length].
//
// It fails with ErrNilBuffer when src is nil, and with a RangeError
// wrapping ErrRange when offset or length is negative or when
// offset+length exceeds len(src). An empty range yields "".
func EncodeRange(src []byte, offset, length int, upper bool) (string, error) {
	if src == nil {
		return "", ErrNilBuffer
	}
	if offset < 0 || length < 0 || offset > len(src)-length {
		return "", newRangeError(offset, length, len(src))
	}
	return encodeRange(src, offset, length, upper), nil
}

func encodeRange(src []byte, offset, length int, upper bool) string {
	table := &lowerTable
	if upper {
		table = &upperTable
	}
	dst := make([]byte, length*2)
	for i, v := range src[offset : offset+length] {
		dst[i*2] = table[v>>4]
		dst[i*2+1] = table[v&0x0f]
	}
	return string(dst)
}

// Decode converts a hex string back to bytes. Both digit cases are
// accepted, mixed freely. Decode fails with ErrNotBase16 when the
// string has odd length or contains a character outside 0-9a-fA-F;
// the two causes are deliberately not distinguished.
func Decode(s string) ([]byte, error) {
	buf, ok := TryDecode(s)
	if !ok {
		return nil, ErrNotBase16
	}
	return buf, nil
}

// TryDecode is the non-erroring counterpart of Decode. It reports
// whether s is a valid hex string and, when it is, returns the decoded
// bytes. On failure the byte slice is nil, never a decoded prefix.
func TryDecode(s string) ([]byte, bool) {
	if len(s)%2 != 0 {
		return nil, false
	}
	buf := make([]byte, len(s)/2)
	for i := range buf {
		hi, ok := decodeNibble(s[i*2])
		if !ok {
			return nil, false
		}
		lo, ok := decodeNibble(s[i*2+1])
		if !ok {
			return nil, false
		}
		buf[i] = hi<<4 | lo
	}
	return buf, true
}

func decodeNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
