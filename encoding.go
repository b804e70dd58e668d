package bgi

import "golang.org/x/text/encoding/charmap"

// EncodeCP437 converts UTF-8 text to code page 437 bytes, one byte per
// rune, so that it can be passed to Write. Runes with no code page 437
// equivalent become '?'.
func EncodeCP437(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.CodePage437.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
