package ast

import (
	"strconv"
	"strings"
)

// Sprint renders an expression fully parenthesised, e.g. (2 + (3 * 4)).
func Sprint(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *IntLiteral:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *FloatLiteral:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *StringLiteral:
		b.WriteString(strconv.Quote(n.Value))
	case *BoolLiteral:
		if n.Value {
			b.WriteString("adevarat")
		} else {
			b.WriteString("fals")
		}
	case *VariableReference:
		b.WriteString(n.Name)
	case *BinaryExpr:
		b.WriteByte('(')
		writeExpr(b, n.Left)
		b.WriteString(" " + n.Operator + " ")
		writeExpr(b, n.Right)
		b.WriteByte(')')
	case *FunctionCall:
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, arg)
		}
		b.WriteByte(')')
	case nil:
		b.WriteString("<nil>")
	}
}
