package script

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/damonallison/swift-fundamentals-sub000/container"
	"github.com/damonallison/swift-fundamentals-sub000/pkg"
	"github.com/damonallison/swift-fundamentals-sub000/pkg/tag"
	"github.com/samber/mo"
	"golang.org/x/mod/semver"
)

const CurrentVersion = "v1"

type Program struct {
	Name    string   `json:"name,omitempty"`
	Version string   `json:"version,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Initial []int    `json:"initial,omitempty"`
	Ops     []Op     `json:"ops"`
}

type Op struct {
	Op    string `json:"op"`
	Value int    `json:"value,omitempty"`
	Index int    `json:"index,omitempty"`
	Size  int    `json:"size,omitempty"`
	If    string `json:"if,omitempty"`
}

type Result struct {
	Op      string             `json:"op"`
	Value   mo.Option[int]     `json:"value"`
	Values  []int              `json:"values,omitempty"`
	Average mo.Option[float64] `json:"average"`
	Len     int                `json:"len"`
	Skipped bool               `json:"skipped,omitempty"`
}

type Report struct {
	Name    string   `json:"name,omitempty"`
	Results []Result `json:"results"`
	Final   []int    `json:"final"`
}

func New(evaler *tag.Evaler, defaultTags []string) *Runner {
	return &Runner{
		evaler:      evaler,
		defaultTags: defaultTags,
	}
}

type Runner struct {
	evaler      *tag.Evaler
	defaultTags []string
}

// Run applies prog to a fresh stack. Bounds are checked before the stack is touched,
// so a bad program yields an error instead of a panic.
func (r *Runner) Run(ctx context.Context, prog Program) (zero Report, _ error) {
	if err := checkVersion(prog.Version); err != nil {
		return zero, err
	}

	tags := container.SetOf(r.defaultTags...)
	for _, t := range prog.Tags {
		tags.Add(t)
	}

	logger := slog.With(slog.String("program", prog.Name))

	s := container.NewStack(prog.Initial...)
	report := Report{
		Name:    prog.Name,
		Results: make([]Result, 0, len(prog.Ops)),
	}

	for i, op := range prog.Ops {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		if op.If != "" && !r.evaler.Eval(op.If, tags) {
			logger.DebugContext(ctx, "skip op", slog.Int("index", i), slog.String("op", op.Op), slog.String("if", op.If))

			report.Results = append(report.Results, Result{Op: op.Op, Len: s.Len(), Skipped: true})

			continue
		}

		res, err := apply(s, op)
		if err != nil {
			return zero, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}

		res.Len = s.Len()
		report.Results = append(report.Results, res)
	}

	report.Final = s.Values()
	if report.Final == nil {
		report.Final = []int{}
	}

	logger.DebugContext(ctx, "ran program", slog.Int("ops", len(prog.Ops)), slog.Int("len", s.Len()))

	return report, nil
}

func apply(s *container.Stack[int], op Op) (Result, error) {
	res := Result{Op: op.Op}

	switch op.Op {
	case "push":
		s.Push(op.Value)
	case "append":
		s.Append(op.Value)
	case "pop":
		res.Value = s.Pop()
	case "top":
		res.Value = s.Top()
	case "len":
		res.Value = mo.Some(s.Len())
	case "at":
		if op.Index < 0 || op.Index >= s.Len() {
			return res, fmt.Errorf("at %d with len %d: %w", op.Index, s.Len(), pkg.ErrOutOfRange)
		}

		res.Value = mo.Some(s.At(op.Index))
	case "suffix":
		if op.Size < 0 || op.Size > s.Len() {
			return res, fmt.Errorf("suffix %d with len %d: %w", op.Size, s.Len(), pkg.ErrOutOfRange)
		}

		res.Values = s.Suffix(op.Size).Values()
	case "clone":
		res.Values = s.Clone().Values()
	case "total":
		res.Value = mo.Some(container.Total(s))
	case "average":
		if s.Empty() {
			return res, pkg.ErrEmptyStack
		}

		res.Average = mo.Some(container.Average(s))
	default:
		return res, pkg.ErrUnknownOp
	}

	return res, nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}

	if !semver.IsValid(v) || semver.Major(v) != CurrentVersion {
		return fmt.Errorf("%q: %w", v, pkg.ErrUnsupportedVersion)
	}

	return nil
}
