package taxonomyedit

const whitespace string = " \t\r\n\v\f"

var whitespaceSet asciiSet = makeASCIISet(whitespace)

const braces string = "{}"

var bracesSet asciiSet = makeASCIISet(braces)

// Characters that open a string literal in the taxonomy source.
const quotes string = "'\"`"

var quotesSet asciiSet = makeASCIISet(quotes)

// asciiSet is a 32-byte value, where each bit represents the presence of a
// given ASCII character in the set. The 128-bits of the lower 16 bytes,
// starting with the least-significant bit of the lowest word to the
// most-significant bit of the highest word, map to the full range of all
// 128 ASCII characters. The 128-bits of the upper 16 bytes will be zeroed,
// ensuring that any non-ASCII character will be reported as not in the set.
type asciiSet [8]uint32

// makeASCIISet creates a set of ASCII characters.
//
// Similar to strings.makeASCIISet but skips input validation.
func makeASCIISet(chars string) (as asciiSet) {
	// all characters in chars are expected to be valid ASCII characters
	for _, c := range chars {
		as[c/32] |= 1 << (c % 32)
	}
	return as
}

// contains reports whether c is inside the set.
func (as *asciiSet) contains(c byte) bool {
	return (as[c/32] & (1 << (c % 32))) != 0
}

// indexAnyASCII returns the index of the first byte of s found in as,
// or -1 if there is none.
func indexAnyASCII(s string, as asciiSet) int {
	for i, b := range []byte(s) {
		if as.contains(b) {
			return i
		}
	}
	return -1
}

// fastTrim strips ASCII whitespace from both ends of s.
func fastTrim(s string) string {
	start, end := 0, len(s)
	for start < end && whitespaceSet.contains(s[start]) {
		start++
	}
	for end > start && whitespaceSet.contains(s[end-1]) {
		end--
	}
	return s[start:end]
}

// braceBalance returns the number of '{' minus the number of '}' in line.
//
// Every brace counts, including braces inside string literals and comments.
func braceBalance(line string) int {
	var balance int
	for {
		idx := indexAnyASCII(line, bracesSet)
		if idx == -1 {
			return balance
		}
		if line[idx] == '{' {
			balance++
		} else {
			balance--
		}
		line = line[idx+1:]
	}
}

// braceBalanceOutsideStrings works like braceBalance but skips braces
// inside quoted literals and everything after a line comment.
//
// A literal left open at the end of the line is closed there; template
// literals spanning lines are not tracked.
func braceBalanceOutsideStrings(line string) int {
	var (
		balance int
		quote   byte
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch {
		case quotesSet.contains(c):
			quote = c
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return balance
		case c == '{':
			balance++
		case c == '}':
			balance--
		}
	}
	return balance
}

// trimTrailingComma removes one trailing comma from s, ignoring
// trailing whitespace.
func trimTrailingComma(s string) string {
	end := len(s)
	for end > 0 && whitespaceSet.contains(s[end-1]) {
		end--
	}
	if end > 0 && s[end-1] == ',' {
		return s[:end-1] + s[end:]
	}
	return s
}
