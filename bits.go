package algokit

import "fmt"

// PackBits packs a string of '0' and '1' into bytes, most significant bit
// first. The final byte is zero-padded; callers keep len(bits) to unpack.
func PackBits(bits string) ([]byte, error) {
	out := make([]byte, (len(bits)+7)/8)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
		case '1':
			out[i>>3] |= 0x80 >> (i & 7)
		default:
			return nil, fmt.Errorf("%w: bit %q at %d", ErrMalformedCode, bits[i], i)
		}
	}
	return out, nil
}

// UnpackBits expands the first n bits of data, most significant bit first,
// back into a string of '0' and '1'.
func UnpackBits(data []byte, n int) (string, error) {
	if n < 0 || n > len(data)*8 {
		return "", fmt.Errorf("%w: %d bits requested from %d bytes", ErrMalformedCode, n, len(data))
	}
	out := make([]byte, n)
	for i := range n {
		if data[i>>3]&(0x80>>(i&7)) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out), nil
}
