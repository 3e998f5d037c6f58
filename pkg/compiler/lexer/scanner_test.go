package lexer_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaresPSCR/ROScript/pkg/compiler/lexer"
)

func kinds(toks []lexer.Token) []lexer.Kind {
	out := make([]lexer.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func lexemes(toks []lexer.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Lexeme
	}
	return out
}

func TestScannerClassification(t *testing.T) {
	toks, _, err := lexer.Tokenize([]byte(`var x = 12 + 3.5 * y1;`))
	require.NoError(t, err)

	expected := []lexer.Kind{
		lexer.KindKeyword,
		lexer.KindIdentifier,
		lexer.KindOperator,
		lexer.KindInt,
		lexer.KindOperator,
		lexer.KindFloat,
		lexer.KindOperator,
		lexer.KindIdentifier,
		lexer.KindLineEnd,
	}
	assert.Equal(t, expected, kinds(toks))
	assert.Equal(t, []string{"var", "x", "=", "12", "+", "3.5", "*", "y1", ";"}, lexemes(toks))
}

func TestScannerWordPriority(t *testing.T) {
	tests := []struct {
		word string
		want lexer.Kind
	}{
		{"daca", lexer.KindKeyword},
		{"fals", lexer.KindKeyword},
		{"007", lexer.KindInt},
		{"0.25", lexer.KindFloat},
		{"1.", lexer.KindIdentifier},
		{".5", lexer.KindIdentifier},
		{"1.2.3", lexer.KindIdentifier},
		{"dacaX", lexer.KindIdentifier},
		{"_tmp", lexer.KindIdentifier},
	}
	for _, tt := range tests {
		toks, _, err := lexer.Tokenize([]byte(tt.word))
		require.NoError(t, err)
		require.Len(t, toks, 1, tt.word)
		if toks[0].Kind != tt.want {
			t.Errorf("%q: expected kind %v, got %v", tt.word, tt.want, toks[0].Kind)
		}
	}
}

func TestScannerOperators(t *testing.T) {
	toks, _, err := lexer.Tokenize([]byte(`== != <= >= += -= *= /= ++ -- = ! < > + - * / %`))
	require.NoError(t, err)
	for _, tok := range toks {
		assert.Equal(t, lexer.KindOperator, tok.Kind, tok.Lexeme)
	}
	assert.Equal(t, []string{"==", "!=", "<=", ">=", "+=", "-=", "*=", "/=", "++", "--", "=", "!", "<", ">", "+", "-", "*", "/", "%"}, lexemes(toks))

	// No whitespace is needed around operators.
	toks, _, err = lexer.Tokenize([]byte(`i++;x<=y`))
	require.NoError(t, err)
	assert.Equal(t, []string{"i", "++", ";", "x", "<=", "y"}, lexemes(toks))
}

func TestScannerPunctuation(t *testing.T) {
	toks, _, err := lexer.Tokenize([]byte(`f(a,b)[]{}`))
	require.NoError(t, err)
	assert.Equal(t, []lexer.Kind{
		lexer.KindIdentifier, lexer.KindLParen, lexer.KindIdentifier, lexer.KindComma,
		lexer.KindIdentifier, lexer.KindRParen, lexer.KindLBracket, lexer.KindRBracket,
		lexer.KindLBrace, lexer.KindRBrace,
	}, kinds(toks))
}

func TestScannerStrings(t *testing.T) {
	toks, _, err := lexer.Tokenize([]byte(`afiseaza "a\tb\n\"c\"\\ \q";`))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.KindString, toks[1].Kind)
	assert.Equal(t, "a\tb\n\"c\"\\ q", toks[1].Lexeme)

	// Separators inside a literal do not split it.
	toks, _, err = lexer.Tokenize([]byte(`"x = 1; y"`))
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "x = 1; y", toks[0].Lexeme)
}

func TestScannerStringFlushesPendingWord(t *testing.T) {
	toks, _, err := lexer.Tokenize([]byte(`abc"def"`))
	require.NoError(t, err)
	assert.Equal(t, []lexer.Kind{lexer.KindIdentifier, lexer.KindString}, kinds(toks))
}

func TestScannerUnterminatedString(t *testing.T) {
	toks, _, err := lexer.Tokenize([]byte("var s;\nafiseaza \"oops"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, lexer.ErrUnterminatedString))
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, []string{"var", "s", ";", "afiseaza"}, lexemes(toks))
}

func TestScannerTokensPerLine(t *testing.T) {
	src := "var x = 1;\r\n\nafiseaza x;\nx++"
	toks, perLine, err := lexer.Tokenize([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 0, 3, 2}, perLine)

	total := 0
	for _, n := range perLine {
		total += n
	}
	assert.Equal(t, len(toks), total)

	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 3, toks[5].Line)
	assert.Equal(t, 4, toks[8].Line)
}

func TestScannerCarriageReturnKeepsWord(t *testing.T) {
	toks, perLine, err := lexer.Tokenize([]byte("ab\rcd = 1\r\nx\r;"))
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd", "=", "1", "x", ";"}, lexemes(toks))
	assert.Equal(t, lexer.KindIdentifier, toks[0].Kind)
	assert.Equal(t, lexer.KindInt, toks[2].Kind)
	assert.Equal(t, []int{3, 2}, perLine)
}

func TestScannerMultilineString(t *testing.T) {
	toks, perLine, err := lexer.Tokenize([]byte("afiseaza \"a\nb\";\nx"))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 1}, perLine)
	assert.Equal(t, 1, toks[1].Line)
	assert.Equal(t, 3, toks[3].Line)
}

func TestScannerRoundTrip(t *testing.T) {
	lines := []string{
		"var x = (1 + 2) * 3;",
		"daca x >= 10 atunci { afiseaza x; } altfel { x += 1; }",
		"pentru var i = 0, i < 5, i++ executa { afiseaza i % 2; }",
		"y=sqrt(x)/2.5",
	}
	for _, line := range lines {
		toks, _, err := lexer.Tokenize([]byte(line))
		require.NoError(t, err)

		var joined strings.Builder
		for _, tok := range toks {
			joined.WriteString(tok.Source())
		}
		assert.Equal(t, strings.Join(strings.Fields(line), ""), joined.String(), line)
	}
}

func TestScannerReset(t *testing.T) {
	s := lexer.NewScanner([]byte("a b c"))
	toks, _, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, toks, 3)

	s.Reset([]byte("d"))
	toks, perLine, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, lexemes(toks))
	assert.Equal(t, []int{1}, perLine)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "LINE_END", lexer.KindLineEnd.String())
	assert.Equal(t, "FLOAT", lexer.KindFloat.String())
}
