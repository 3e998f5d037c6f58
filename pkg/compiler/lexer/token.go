package lexer

import "strconv"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindKeyword Kind = iota
	KindIdentifier
	KindInt
	KindFloat
	KindString
	KindOperator
	KindLineEnd  // ;
	KindLParen   // (
	KindRParen   // )
	KindLBrace   // {
	KindRBrace   // }
	KindLBracket // [
	KindRBracket // ]
	KindComma    // ,
)

var kindNames = [...]string{
	KindKeyword:    "KEYWORD",
	KindIdentifier: "IDENTIFIER",
	KindInt:        "INT",
	KindFloat:      "FLOAT",
	KindString:     "STRING",
	KindOperator:   "OPERATOR",
	KindLineEnd:    "LINE_END",
	KindLParen:     "LPAREN",
	KindRParen:     "RPAREN",
	KindLBrace:     "LBRACE",
	KindRBrace:     "RBRACE",
	KindLBracket:   "LBRACKET",
	KindRBracket:   "RBRACKET",
	KindComma:      "COMMA",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a classified lexical unit. Line is the 1-based source line the token starts on.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// Is reports whether the token has the given kind and lexeme.
func (t Token) Is(kind Kind, lexeme string) bool {
	return t.Kind == kind && t.Lexeme == lexeme
}

// Source renders the token the way it appeared in the script.
func (t Token) Source() string {
	if t.Kind == KindString {
		return strconv.Quote(t.Lexeme)
	}
	return t.Lexeme
}

// Keywords is the fixed keyword list.
var Keywords = []string{
	"var", "afiseaza", "citeste", "daca", "atunci", "altfel", "executa",
	"cat", "timp", "pentru", "pana", "cand", "fiecare", "adevarat", "fals",
}

var keywordSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Keywords))
	for _, kw := range Keywords {
		m[kw] = struct{}{}
	}
	return m
}()

// IsKeyword reports whether word is reserved.
func IsKeyword(word string) bool {
	_, ok := keywordSet[word]
	return ok
}
