package parser

import "github.com/RaresPSCR/ROScript/pkg/compiler/lexer"

// splitLines groups a flat token stream into logical lines. A LINE_END ends a
// line only outside braces, so a block travels with the statement that owns
// it. A closing brace at depth zero also ends the line unless the following
// token continues the construct (altfel after daca, cat/pana after executa).
// The final line needs no terminator and empty lines are dropped.
func splitLines(toks []lexer.Token) [][]lexer.Token {
	var (
		lines [][]lexer.Token
		cur   []lexer.Token
		depth int
	)
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, cur)
		}
		cur = nil
	}

	for i, tok := range toks {
		switch tok.Kind {
		case lexer.KindLineEnd:
			if depth == 0 {
				flush()
				continue
			}
		case lexer.KindLBrace:
			depth++
		case lexer.KindRBrace:
			if depth > 0 {
				depth--
			}
			cur = append(cur, tok)
			if depth == 0 && !continuesAfterBlock(cur[0], toks, i+1) {
				flush()
			}
			continue
		}
		cur = append(cur, tok)
	}
	flush()
	return lines
}

func continuesAfterBlock(first lexer.Token, toks []lexer.Token, next int) bool {
	if next >= len(toks) {
		return false
	}
	nt := toks[next]
	switch {
	case first.Is(lexer.KindKeyword, kwIf):
		return nt.Is(lexer.KindKeyword, kwElse)
	case first.Is(lexer.KindKeyword, kwDo):
		return nt.Is(lexer.KindKeyword, kwWhile) || nt.Is(lexer.KindKeyword, kwUntil)
	}
	return false
}
