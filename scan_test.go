// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package alter

import "testing"

func TestCursorIdent(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
		pos   int
	}{
		{"", "", false, 0},
		{"x", "x", true, 1},
		{"_tag9 rest", "_tag9", true, 5},
		{"Name>", "Name", true, 4},
		{"9x", "", false, 0},
		{" x", "", false, 0}, // ident does not skip space itself
	}
	for _, test := range tests {
		c := cursor{src: test.input}
		got, ok := c.ident()
		if got != test.want || ok != test.ok || c.pos != test.pos {
			t.Errorf("ident(%#q): got (%q, %v) at %d, want (%q, %v) at %d",
				test.input, got, ok, c.pos, test.want, test.ok, test.pos)
		}
	}
}

func TestCursorQuoted(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{`"abc" tail`, "abc", true},
		{`""`, "", true},
		{"\"a\nb\"", "a\nb", true}, // the scan crosses newlines
		{`"a\"`, `a\`, true},       // no escape processing: \ ends nothing
		{`"open`, "", false},
		{`abc`, "", false},
	}
	for _, test := range tests {
		c := cursor{src: test.input}
		got, ok := c.quoted()
		if got != test.want || ok != test.ok {
			t.Errorf("quoted(%#q): got (%q, %v), want (%q, %v)",
				test.input, got, ok, test.want, test.ok)
		}
	}
}

func TestCursorNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"0", "0", true},
		{"42,", "42", true},
		{"2.5}", "2.5", true},
		{"7.", "7.", true},
		{".5", "", false},      // no leading digits
		{"-1", "", false},      // no sign
		{"2.5.1", "2.5", true}, // second point ends the numeral
	}
	for _, test := range tests {
		c := cursor{src: test.input}
		got, ok := c.number()
		if got != test.want || ok != test.ok {
			t.Errorf("number(%#q): got (%q, %v), want (%q, %v)",
				test.input, got, ok, test.want, test.ok)
		}
	}
}

func TestCursorLit(t *testing.T) {
	c := cursor{src: "  null,"}
	c.skipSpace()
	if !c.lit("null") {
		t.Fatal(`lit("null") failed`)
	}
	if c.lit("null") {
		t.Error(`lit("null") matched twice`)
	}
	if !c.lit(",") || !c.eof() {
		t.Errorf("Cursor at %d, want end of input", c.pos)
	}
}
