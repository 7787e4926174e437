package main

import "strings"

// ParseAttributes reads the GTF attribute column, `key "value"; key "value";`.
// Only pairs written as a key, one space and a non-empty quoted value are kept,
// so bare values and odd spacing never produce an entry. The first occurrence
// of a key wins and quoted values may hold ';' and blanks.
func ParseAttributes(s string) map[string]string {
	var (
		attr = make(map[string]string)
		p    = &attrScanner{s: s}
	)
	for {
		p.skip(" \t;")
		if p.eof() {
			return attr
		}
		if p.peek() == '"' {
			p.quoted()
			continue
		}
		var key = p.token()
		if !strings.HasPrefix(p.s[p.pos:], ` "`) {
			continue
		}
		p.pos++
		var value = p.quoted()
		if value == "" {
			continue
		}
		if _, ok := attr[key]; !ok {
			attr[key] = value
		}
	}
}

type attrScanner struct {
	s   string
	pos int
}

func (p *attrScanner) eof() bool { return p.pos >= len(p.s) }

func (p *attrScanner) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

func (p *attrScanner) skip(set string) {
	for !p.eof() && isIn(p.s[p.pos], set) {
		p.pos++
	}
}

// token reads up to the next blank, ';' or '"'
func (p *attrScanner) token() string {
	var start = p.pos
	for !p.eof() && !isIn(p.s[p.pos], " \t;\"") {
		p.pos++
	}
	return p.s[start:p.pos]
}

// quoted reads a "..." value; an unterminated quote yields nothing
func (p *attrScanner) quoted() string {
	p.pos++
	var start = p.pos
	for !p.eof() && p.s[p.pos] != '"' {
		p.pos++
	}
	if p.eof() {
		return ""
	}
	var value = p.s[start:p.pos]
	p.pos++
	return value
}

func isIn(c byte, set string) bool {
	return strings.IndexByte(set, c) >= 0
}
