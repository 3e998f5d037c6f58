package lexer

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrSourceNotFound     = errors.New("source not found")
	ErrUnterminatedString = errors.New("unterminated string literal")
)

// separators end a pending word. Whitespace is handled separately.
const separators = "=;+-*/(){}[],<>!%"

// Scanner performs lexical analysis on ROScript source.
type Scanner struct {
	source []byte
	cursor int
	line   int

	wordStart int
	wordLine  int

	tokens  []Token
	perLine []int
	count   int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	s := &Scanner{}
	s.Reset(source)
	return s
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.wordStart = -1
	s.tokens = nil
	s.perLine = nil
	s.count = 0
}

// Tokenize scans source in one pass.
func Tokenize(source []byte) ([]Token, []int, error) {
	return NewScanner(source).Scan()
}

// Scan consumes the whole source and returns the token stream together with
// the number of tokens produced on each source line. On an unterminated string
// the tokens scanned so far are returned with the error.
func (s *Scanner) Scan() ([]Token, []int, error) {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]

		switch {
		case ch == '\n':
			s.flushWord()
			s.endLine()
			s.cursor++

		case ch == '\r':
			// Dropped without ending the current word.
			s.cursor++

		case isSpace(ch):
			s.flushWord()
			s.cursor++

		case ch == '"':
			s.flushWord()
			if err := s.scanString(); err != nil {
				s.perLine = append(s.perLine, s.count)
				return s.tokens, s.perLine, err
			}

		case strings.IndexByte(separators, ch) >= 0:
			s.flushWord()
			s.scanPunct(ch)

		default:
			if s.wordStart < 0 {
				s.wordStart = s.cursor
				s.wordLine = s.line
			}
			s.cursor++
		}
	}

	s.flushWord()
	s.perLine = append(s.perLine, s.count)
	return s.tokens, s.perLine, nil
}

func (s *Scanner) emit(kind Kind, lexeme string, line int) {
	s.tokens = append(s.tokens, Token{Kind: kind, Lexeme: lexeme, Line: line})
	s.count++
}

func (s *Scanner) endLine() {
	s.perLine = append(s.perLine, s.count)
	s.count = 0
	s.line++
}

func (s *Scanner) flushWord() {
	if s.wordStart < 0 {
		return
	}
	word := strings.ReplaceAll(string(s.source[s.wordStart:s.cursor]), "\r", "")
	s.wordStart = -1
	s.emit(classify(word), word, s.wordLine)
}

func classify(word string) Kind {
	switch {
	case IsKeyword(word):
		return KindKeyword
	case isInteger(word):
		return KindInt
	case isFloat(word):
		return KindFloat
	default:
		return KindIdentifier
	}
}

func (s *Scanner) scanString() error {
	start := s.line
	s.cursor++ // Skip opening '"'

	// The literal counts towards the line it starts on.
	s.count++
	var b strings.Builder
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		s.cursor++
		switch ch {
		case '"':
			s.tokens = append(s.tokens, Token{Kind: KindString, Lexeme: b.String(), Line: start})
			return nil
		case '\\':
			if s.cursor >= len(s.source) {
				continue
			}
			esc := s.source[s.cursor]
			s.cursor++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				if esc == '\n' {
					s.rawNewline()
				}
				b.WriteByte(esc)
			}
		case '\n':
			s.rawNewline()
			b.WriteByte(ch)
		case '\r':
		default:
			b.WriteByte(ch)
		}
	}
	if s.line == start {
		s.count--
	}
	return errors.Wrapf(ErrUnterminatedString, "string starting on line %d", start)
}

// rawNewline closes a source line that ends inside a string literal.
func (s *Scanner) rawNewline() {
	s.perLine = append(s.perLine, s.count)
	s.count = 0
	s.line++
}

func (s *Scanner) scanPunct(ch byte) {
	line := s.line
	s.cursor++

	switch ch {
	case '=', '!', '<', '>', '+', '-', '*', '/':
		next := s.peek()
		switch {
		case next == '=':
			s.cursor++
			s.emit(KindOperator, string([]byte{ch, '='}), line)
		case ch == '+' && next == '+':
			s.cursor++
			s.emit(KindOperator, "++", line)
		case ch == '-' && next == '-':
			s.cursor++
			s.emit(KindOperator, "--", line)
		default:
			s.emit(KindOperator, string(ch), line)
		}
	case '%':
		s.emit(KindOperator, "%", line)
	case ';':
		s.emit(KindLineEnd, ";", line)
	case '(':
		s.emit(KindLParen, "(", line)
	case ')':
		s.emit(KindRParen, ")", line)
	case '{':
		s.emit(KindLBrace, "{", line)
	case '}':
		s.emit(KindRBrace, "}", line)
	case '[':
		s.emit(KindLBracket, "[", line)
	case ']':
		s.emit(KindRBracket, "]", line)
	case ',':
		s.emit(KindComma, ",", line)
	}
}

// peek returns the byte at the cursor, which scanPunct has already advanced past the operator.
func (s *Scanner) peek() byte {
	if s.cursor >= len(s.source) {
		return 0
	}
	return s.source[s.cursor]
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isInteger(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !isDigit(word[i]) {
			return false
		}
	}
	return true
}

func isFloat(word string) bool {
	dot := strings.IndexByte(word, '.')
	if dot <= 0 || dot == len(word)-1 {
		return false
	}
	return isInteger(word[:dot]) && isInteger(word[dot+1:])
}
