// Package grapheme answers the codepoint and grapheme-cluster queries the
// line editor needs: lead-byte lengths, boundary arithmetic and display
// widths. Boundaries are computed with Unicode grapheme segmentation, so a
// cluster may span several codepoints.
package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// RuneLen returns the number of bytes of the UTF-8 sequence starting with
// the given lead byte, or 0 if the byte cannot start a sequence.
func RuneLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC0:
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF8:
		return 4
	default:
		return 0
	}
}

// Valid reports whether p is exactly one well-formed UTF-8 sequence.
func Valid(p []byte) bool {
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return size == len(p)
}

// NextRune returns the position just after the codepoint starting at pos.
func NextRune(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[pos:])
	return pos + size
}

// PrevRune returns the position of the codepoint before pos.
func PrevRune(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s[:pos])
	return pos - size
}

// NextBoundary returns the grapheme-cluster boundary after pos. Boundaries
// are found by walking the whole string from the start, since cluster
// breaks can depend on text before pos.
func NextBoundary(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	for b, rest := 0, s; rest != ""; {
		cluster, r, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		b += len(cluster)
		rest = r
		if b > pos {
			return b
		}
	}
	return len(s)
}

// PrevBoundary returns the grapheme-cluster boundary before pos.
func PrevBoundary(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	prev := 0
	for b, rest := 0, s; rest != ""; {
		cluster, r, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		b += len(cluster)
		rest = r
		if b >= pos {
			return prev
		}
		prev = b
	}
	return prev
}

// WidthAt returns the display width (0, 1 or 2 columns) of the grapheme
// cluster starting at pos.
func WidthAt(s string, pos int) int {
	if pos >= len(s) {
		return 0
	}
	_, _, width, _ := uniseg.FirstGraphemeClusterInString(s[pos:], -1)
	return width
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
