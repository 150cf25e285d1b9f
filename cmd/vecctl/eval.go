package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"uniformity/internal/geometry/line"
	"uniformity/internal/geometry/vector"
)

// ErrUnknownOp is returned by Eval for an operation name it does not know.
var ErrUnknownOp = errors.New("unknown operation")

// Args holds the operands for one evaluation.
type Args struct {
	A, B   vector.Vec3
	Scalar float64
	Index  int
}

type opFunc func(Args) (fmt.Stringer, error)

type scalar float64

func (s scalar) String() string { return strconv.FormatFloat(float64(s), 'g', -1, 64) }

type boolean bool

func (b boolean) String() string { return strconv.FormatBool(bool(b)) }

var ops = map[string]opFunc{
	"add": func(x Args) (fmt.Stringer, error) { return x.A.Add(x.B), nil },
	"sub": func(x Args) (fmt.Stringer, error) { return x.A.Sub(x.B), nil },
	"neg": func(x Args) (fmt.Stringer, error) { return x.A.Neg(), nil },
	"mul": func(x Args) (fmt.Stringer, error) { return x.A.Mul(x.Scalar), nil },
	"div": func(x Args) (fmt.Stringer, error) {
		return x.A.Div(x.Scalar)
	},
	"norm": func(x Args) (fmt.Stringer, error) { return scalar(x.A.Norm()), nil },
	"normalize": func(x Args) (fmt.Stringer, error) {
		return x.A.Normalize()
	},
	"dist":  func(x Args) (fmt.Stringer, error) { return scalar(x.A.Distance(x.B)), nil },
	"dot":   func(x Args) (fmt.Stringer, error) { return scalar(x.A.Dot(x.B)), nil },
	"cross": func(x Args) (fmt.Stringer, error) { return x.A.Cross(x.B), nil },
	"eq":    func(x Args) (fmt.Stringer, error) { return boolean(x.A.Equal(x.B)), nil },
	"at": func(x Args) (fmt.Stringer, error) {
		c, err := x.A.At(x.Index)
		return scalar(c), err
	},
	"line": func(x Args) (fmt.Stringer, error) {
		return line.New(x.A, x.B)
	},
	"segment": func(x Args) (fmt.Stringer, error) {
		return line.NewSegment(x.A, x.B)
	},
}

func opNames() string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Eval runs the named operation and returns its printable result.
func Eval(name string, args Args) (string, error) {
	f, ok := ops[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	out, err := f(args)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// ParseVec3 parses "x,y,z". Missing trailing components are zero and an
// empty string is the zero vector.
func ParseVec3(s string) (vector.Vec3, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return vector.Zero, nil
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) > vector.Dim {
		return vector.Zero, fmt.Errorf("want at most %d components, got %d", vector.Dim, len(parts))
	}
	var c [vector.Dim]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vector.Zero, fmt.Errorf("component %d: %w", i, err)
		}
		c[i] = f
	}
	return vector.NewVec3(c[0], c[1], c[2]), nil
}
