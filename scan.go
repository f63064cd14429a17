// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package alter

import "go4.org/mem"

// A cursor is a position into a fully materialized input buffer. Its
// scanning helpers either consume text and advance the position, or leave
// the position unchanged and report failure. None of them allocates; each
// returned token is a view of the input.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

// peek reports the byte at the cursor, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

// skipSpace advances the cursor past any whitespace.
func (c *cursor) skipSpace() {
	for !c.eof() && isSpace(c.src[c.pos]) {
		c.pos++
	}
}

// lit consumes the given literal if the input matches it at the cursor.
func (c *cursor) lit(s string) bool {
	if !mem.HasPrefix(mem.S(c.src).SliceFrom(c.pos), mem.S(s)) {
		return false
	}
	c.pos += len(s)
	return true
}

// ident consumes an identifier: a letter or underscore followed by word
// characters.
func (c *cursor) ident() (string, bool) {
	if c.eof() || !isIdentStart(c.src[c.pos]) {
		return "", false
	}
	start := c.pos
	c.pos++
	for !c.eof() && isWord(c.src[c.pos]) {
		c.pos++
	}
	return c.src[start:c.pos], true
}

// quoted consumes a double-quoted run. The scan is non-greedy and performs
// no escape processing: the run ends at the first following quotation mark,
// whatever precedes it. It reports failure when the cursor is not on a
// quotation mark or no closing one follows.
func (c *cursor) quoted() (string, bool) {
	if c.peek() != '"' {
		return "", false
	}
	for i := c.pos + 1; i < len(c.src); i++ {
		if c.src[i] == '"' {
			body := c.src[c.pos+1 : i]
			c.pos = i + 1
			return body, true
		}
	}
	return "", false
}

// number consumes a decimal numeral: digits, an optional point, and
// optional further digits. No sign, no exponent.
func (c *cursor) number() (string, bool) {
	start := c.pos
	for !c.eof() && isDigit(c.src[c.pos]) {
		c.pos++
	}
	if c.pos == start {
		return "", false
	}
	if !c.eof() && c.src[c.pos] == '.' {
		c.pos++
		for !c.eof() && isDigit(c.src[c.pos]) {
			c.pos++
		}
	}
	return c.src[start:c.pos], true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r'
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isWord(b byte) bool { return isIdentStart(b) || isDigit(b) }
