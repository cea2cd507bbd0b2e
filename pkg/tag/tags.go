package tag

import (
	"log/slog"
	"strings"

	"github.com/damonallison/swift-fundamentals-sub000/container"
)

func New() *Evaler {
	return &Evaler{}
}

type Evaler struct{}

// Eval reports whether expr holds for the given tags. Malformed input is false.
func (p *Evaler) Eval(expr string, tags *container.Set[string]) bool {
	logger := slog.With(slog.String("expr", expr))

	out := container.NewStack[string]()
	ops := container.NewStack[string]()

	top := func() string {
		return ops.Top().OrEmpty()
	}

	prev := ""

	for _, t := range tokenize(expr) {
		switch t {
		case "!", "(":
			ops.Push(t)
		case "&&":
			for !ops.Empty() && top() != "&&" && top() != "||" && top() != "(" {
				out.Push(ops.Pop().MustGet())
			}

			ops.Push(t)
		case "||":
			for !ops.Empty() && top() != "||" && top() != "(" {
				out.Push(ops.Pop().MustGet())
			}

			ops.Push(t)
		case ")":
			if prev == "(" {
				logger.Error("empty parens")
				return false
			}

			matched := false

			for !ops.Empty() {
				cur := ops.Pop().MustGet()
				if cur == "(" {
					matched = true
					break
				}

				out.Push(cur)
			}

			if !matched {
				logger.Error("unbalanced parens")
				return false
			}
		default:
			out.Push(t)
		}

		prev = t
	}

	for !ops.Empty() {
		out.Push(ops.Pop().MustGet())
	}

	eval := container.NewStack[bool]()

	for _, t := range out.All() {
		switch t {
		case "(":
			logger.Error("unbalanced parens")
			return false
		case "!":
			operand, ok := eval.Pop().Get()
			if !ok {
				logger.Error("no operand for !")
				return false
			}

			eval.Push(!operand)
		case "||", "&&":
			first, ok := eval.Pop().Get()
			if !ok {
				logger.Error("no operand for || or &&", slog.String("op", t))
				return false
			}

			second, ok := eval.Pop().Get()
			if !ok {
				logger.Error("no operand for || or &&", slog.String("op", t))
				return false
			}

			if t == "&&" {
				eval.Push(first && second)
			} else {
				eval.Push(first || second)
			}
		default:
			eval.Push(tags.Contains(t))
		}
	}

	ret, ok := eval.Pop().Get()
	if !ok {
		logger.Error("empty expression")
		return false
	}

	if !eval.Empty() {
		logger.Error("extra tokens in result stack", slog.Int("extra", eval.Len()))
		return false
	}

	return ret
}

func tokenize(expr string) []string {
	var ret []string

	for _, field := range strings.Fields(expr) {
		cur := ""

		for _, ch := range field {
			switch ch {
			case '!', '(', ')':
				if cur != "" {
					ret = append(ret, cur)
					cur = ""
				}

				ret = append(ret, string(ch))
			default:
				cur += string(ch)
			}
		}

		if cur != "" {
			ret = append(ret, cur)
		}
	}

	return ret
}
