package pluralforms

// Expression is a compiled Plural-Forms expression. Eval returns the
// index of the phrase alternative to use for count n, which is the
// magnitude of a time unit and never negative in practice.
type Expression interface {
	Eval(n int) int
}

func logic(b bool) int {
	if b {
		return 1
	}
	return 0
}

type notExpr struct {
	sub Expression
}

func (e notExpr) Eval(n int) int {
	return logic(e.sub.Eval(n) == 0)
}

// binaryExpr applies the operator token op. && and || short-circuit,
// and division or modulo by zero yield 0.
type binaryExpr struct {
	op          int
	left, right Expression
}

func (e binaryExpr) Eval(n int) int {
	left := e.left.Eval(n)
	switch e.op {
	case andTok:
		return logic(left != 0 && e.right.Eval(n) != 0)
	case orTok:
		return logic(left != 0 || e.right.Eval(n) != 0)
	}

	right := e.right.Eval(n)
	switch e.op {
	case eqTok:
		return logic(left == right)
	case neTok:
		return logic(left != right)
	case ltTok:
		return logic(left < right)
	case lteTok:
		return logic(left <= right)
	case gtTok:
		return logic(left > right)
	case gteTok:
		return logic(left >= right)
	case '+':
		return left + right
	case '-':
		return left - right
	case '*':
		return left * right
	case '/':
		if right == 0 {
			return 0
		}
		return left / right
	case '%':
		if right == 0 {
			return 0
		}
		return left % right
	}
	panic("unknown binary operator " + tokenName(e.op))
}

type ternaryExpr struct {
	test, ifTrue, ifFalse Expression
}

func (e ternaryExpr) Eval(n int) int {
	if e.test.Eval(n) != 0 {
		return e.ifTrue.Eval(n)
	}
	return e.ifFalse.Eval(n)
}

type numberExpr int

func (e numberExpr) Eval(int) int {
	return int(e)
}

type countExpr struct{}

func (countExpr) Eval(n int) int {
	return n
}
