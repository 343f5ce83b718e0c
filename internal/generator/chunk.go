package generator

import "unicode/utf8"

// Chunk splits s into consecutive pieces of at most size bytes, cutting only
// on rune boundaries. A rune wider than size becomes a piece of its own.
// Concatenating the pieces yields s. An empty s yields no pieces.
func Chunk(s string, size int) []string {
	if size <= 0 {
		panic("chunk size must be positive")
	}
	if s == "" {
		return nil
	}

	var chunks []string
	for len(s) > size {
		cut := size
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		if cut == 0 {
			_, cut = utf8.DecodeRuneInString(s)
		}
		chunks = append(chunks, s[:cut])
		s = s[cut:]
	}
	if s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}
