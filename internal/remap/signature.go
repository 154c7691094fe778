package remap

import "strings"

// sigParser rewrites a generic signature while copying it to out.
//
// Grammar (JVMS 4.7.9.1), reduced to what remapping needs:
//
//	Signature      = [TypeParams] { "(" | ")" | "^" | Type }
//	TypeParams     = "<" { Ident ":" [Type] { ":" Type } } ">"
//	Type           = BaseType | "V" | "[" Type | "T" Ident ";" | ClassType
//	ClassType      = "L" Name [TypeArgs] { "." Ident [TypeArgs] } ";"
//	TypeArgs       = "<" { "*" | ["+" | "-"] Type } ">"
type sigParser struct {
	src string
	pos int
	out strings.Builder
	r   *Remapper
}

func (p *sigParser) parse() bool {
	if p.peek() == '<' && !p.typeParams() {
		return false
	}

	for p.pos < len(p.src) {
		switch p.peek() {
		case '(', ')', '^':
			p.copy(1)
		default:
			if !p.typ() {
				return false
			}
		}
	}

	return true
}

func (p *sigParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

func (p *sigParser) copy(n int) {
	p.out.WriteString(p.src[p.pos : p.pos+n])
	p.pos += n
}

// ident returns the identifier starting at pos, stopping at any of stops.
func (p *sigParser) ident(stops string) (string, bool) {
	end := strings.IndexAny(p.src[p.pos:], stops)
	if end <= 0 {
		return "", false
	}

	id := p.src[p.pos : p.pos+end]
	p.pos += end

	return id, true
}

func (p *sigParser) typeParams() bool {
	p.copy(1) // '<'

	for p.peek() != '>' {
		id, ok := p.ident(":")
		if !ok {
			return false
		}

		p.out.WriteString(id)

		for p.peek() == ':' {
			p.copy(1)

			switch p.peek() {
			case 'L', 'T', '[':
				if !p.typ() {
					return false
				}
			}
		}

		if p.pos >= len(p.src) {
			return false
		}
	}

	p.copy(1) // '>'

	return true
}

func (p *sigParser) typ() bool {
	switch p.peek() {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 'V':
		p.copy(1)
		return true
	case '[':
		p.copy(1)
		return p.typ()
	case 'T':
		end := strings.IndexByte(p.src[p.pos:], ';')
		if end < 2 {
			return false
		}

		p.copy(end + 1)

		return true
	case 'L':
		return p.classType()
	default:
		return false
	}
}

func (p *sigParser) classType() bool {
	p.pos++ // 'L'

	name, ok := p.ident("<.;")
	if !ok {
		return false
	}

	outer := name
	p.out.WriteByte('L')
	p.out.WriteString(p.r.MapType(name))

	for {
		switch p.peek() {
		case '<':
			if !p.typeArgs() {
				return false
			}
		case '.':
			p.pos++

			inner, ok := p.ident("<.;")
			if !ok {
				return false
			}

			p.out.WriteByte('.')
			p.out.WriteString(p.mapInner(outer, inner))
			outer = outer + "$" + inner
		case ';':
			p.copy(1)
			return true
		default:
			return false
		}
	}
}

// mapInner remaps the simple name of an inner class through its binary
// name, keeping the original simple name if the mapping moves it elsewhere.
func (p *sigParser) mapInner(outer, inner string) string {
	full := p.r.MapType(outer + "$" + inner)
	prefix := p.r.MapType(outer) + "$"

	if strings.HasPrefix(full, prefix) {
		return full[len(prefix):]
	}

	return inner
}

func (p *sigParser) typeArgs() bool {
	p.copy(1) // '<'

	for p.peek() != '>' {
		switch p.peek() {
		case '*':
			p.copy(1)
		case '+', '-':
			p.copy(1)

			if !p.typ() {
				return false
			}
		case 0:
			return false
		default:
			if !p.typ() {
				return false
			}
		}
	}

	p.copy(1) // '>'

	return true
}
