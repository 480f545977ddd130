package stemmer

import "unicode/utf8"

// Buffer helpers in the style of Lucene's StemmerUtil. Each one looks only
// at the first n runes of s; anything past n is a stripped suffix.

func active(s []rune, n int) int {
	if n > len(s) {
		return len(s)
	}
	if n < 0 {
		return 0
	}
	return n
}

// HasSuffix reports whether s[:n] ends with suffix.
func HasSuffix(s []rune, n int, suffix string) bool {
	n = active(s, n)
	if utf8.RuneCountInString(suffix) > n {
		return false
	}
	i := n
	for len(suffix) > 0 {
		r, size := utf8.DecodeLastRuneInString(suffix)
		i--
		if s[i] != r {
			return false
		}
		suffix = suffix[:len(suffix)-size]
	}
	return true
}

// HasPrefix reports whether s[:n] begins with prefix.
func HasPrefix(s []rune, n int, prefix string) bool {
	n = active(s, n)
	if utf8.RuneCountInString(prefix) > n {
		return false
	}
	i := 0
	for _, r := range prefix {
		if s[i] != r {
			return false
		}
		i++
	}
	return true
}

// DeleteN removes count runes at pos from s[:n] and returns the result with
// its new length. s is left untouched.
func DeleteN(s []rune, pos, n, count int) ([]rune, int) {
	n = active(s, n)
	if pos < 0 || count <= 0 || pos > n {
		out := make([]rune, n)
		copy(out, s[:n])
		return out, n
	}
	if pos+count > n {
		count = n - pos
	}
	out := make([]rune, 0, n-count)
	out = append(out, s[:pos]...)
	out = append(out, s[pos+count:n]...)
	return out, len(out)
}

// ReplaceAt returns a copy of s with the rune at pos set to r.
func ReplaceAt(s []rune, pos int, r rune) []rune {
	out := make([]rune, len(s))
	copy(out, s)
	if pos >= 0 && pos < len(out) {
		out[pos] = r
	}
	return out
}
