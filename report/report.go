// Package report renders a limit.Result as a human-readable, localized
// text report: one step table per side followed by a summary and a
// verdict.
//
// Rendering never evaluates the function again; everything printed comes
// from the retained approach sequences in the Result.
//
// Layout (English, abbreviated):
//
//	=== LIMIT: f(x) = x² ===
//	Computing lim(x→2) f(x)
//
//	APPROACH FROM THE LEFT (x < 2)
//	Step  | x                  | f(x)
//	------------------------------------------------
//	1     |     1.000000000000 |     1.000000000000
//	…
//
//	================================================
//	Limit from left  : 3.999999761581
//	Limit from right : 4.000000238419
//	Difference       : 4.77E-07
//
//	LIMIT FOUND
//	lim(x→2) f(x) = 4.000000000000
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/limes/limit"
)

const (
	// DefaultPrecision is the number of decimals for x and f(x).
	DefaultPrecision = 12

	// MaxPrecision bounds WithPrecision; float64 carries ~17 significant digits.
	MaxPrecision = 17

	ruleWidth  = 48
	stepWidth  = 5
	valueWidth = 18
	labelWidth = 17
)

// Sentinel errors.
var (
	// ErrNilResult is returned when Render receives a nil result.
	ErrNilResult = errors.New("report: result is nil")

	// ErrBadPrecision is returned for a precision outside [0, MaxPrecision].
	ErrBadPrecision = errors.New("report: precision out of range")
)

// Option configures Render.
type Option func(*options)

type options struct {
	title     string
	exact     float64
	hasExact  bool
	lang      language.Tag
	precision int
	steps     bool
}

func defaultOptions() options {
	return options{
		lang:      language.English,
		precision: DefaultPrecision,
		steps:     true,
	}
}

// WithTitle prints a title line naming the function, e.g. "x²".
func WithTitle(expr string) Option {
	return func(o *options) { o.title = expr }
}

// WithExact adds the exact limit and the absolute error of the estimate
// to the verdict when the limit exists.
func WithExact(v float64) Option {
	return func(o *options) {
		o.exact = v
		o.hasExact = true
	}
}

// WithLanguage selects the message language. Unsupported tags fall back
// to the closest supported language, English by default.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.lang = tag }
}

// WithPrecision sets the number of decimals in the step tables and the
// one-sided values.
func WithPrecision(n int) Option {
	return func(o *options) { o.precision = n }
}

// WithoutSteps omits the per-side step tables.
func WithoutSteps() Option {
	return func(o *options) { o.steps = false }
}

// Render writes the report for res to w.
//
// Errors:
//   - ErrNilResult    — res is nil.
//   - ErrBadPrecision — precision outside [0, MaxPrecision].
//   - a wrapped write error from w.
func Render(w io.Writer, res *limit.Result, opts ...Option) error {
	if res == nil {
		return ErrNilResult
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.precision < 0 || o.precision > MaxPrecision {
		return fmt.Errorf("%w: %d", ErrBadPrecision, o.precision)
	}

	r := &renderer{
		p:    newPrinter(o.lang),
		opts: o,
		res:  res,
		num:  fmt.Sprintf("%%.%df", o.precision),
	}
	r.render()

	if _, err := io.WriteString(w, r.b.String()); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}

// renderer accumulates the report text.
type renderer struct {
	p    *message.Printer
	opts options
	res  *limit.Result
	num  string // fixed-precision verb, e.g. "%.12f"
	b    strings.Builder
}

func (r *renderer) render() {
	point := r.p.Sprintf("%v", r.res.Point)

	if r.opts.title != "" {
		r.line(r.p.Sprintf(keyTitle, r.opts.title))
	}
	r.line(r.p.Sprintf(keyComputing, point))
	r.line("")

	if r.opts.steps {
		r.table(r.p.Sprintf(keyHeadLeft, point), r.res.Left)
		r.line("")
		r.table(r.p.Sprintf(keyHeadRight, point), r.res.Right)
		r.line("")
	}

	r.line(strings.Repeat("=", ruleWidth))
	r.field(keyLimitLeft, r.value(r.res.LeftValue))
	r.field(keyLimitRight, r.value(r.res.RightValue))
	r.field(keyDifference, r.diff())
	r.line("")

	if !r.res.Exists {
		r.line(r.p.Sprintf(keyNotFound))
		r.line("  (" + r.reason() + ")")
		return
	}

	r.line(r.p.Sprintf(keyFound))
	r.line(r.p.Sprintf(keyLimitValue, point, r.value(r.res.Value)))
	if r.opts.hasExact {
		r.field(keyExact, r.value(r.opts.exact))
		r.field(keyError, r.p.Sprintf("%.2e", math.Abs(r.res.Value-r.opts.exact)))
	}
}

// table writes a heading and one row per step.
func (r *renderer) table(heading string, seq limit.Sequence) {
	r.line(heading)
	r.line(fmt.Sprintf("%s | %s | %s",
		padRight(r.p.Sprintf(keyColStep), stepWidth),
		padRight("x", valueWidth),
		padRight("f(x)", valueWidth),
	))
	r.line(strings.Repeat("-", ruleWidth))

	for _, st := range seq.Steps {
		fx := r.p.Sprintf(keyUndefined)
		if st.Defined {
			fx = r.p.Sprintf(r.num, st.FX)
		}
		r.line(fmt.Sprintf("%s | %s | %s",
			padRight(fmt.Sprint(st.Index), stepWidth),
			padLeft(r.p.Sprintf(r.num, st.X), valueWidth),
			padLeft(fx, valueWidth),
		))
	}
}

// value formats v at the report precision, or the undefined marker.
func (r *renderer) value(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return r.p.Sprintf(keyUndefined)
	}

	return r.p.Sprintf(r.num, v)
}

func (r *renderer) diff() string {
	if math.IsNaN(r.res.Diff) {
		return r.p.Sprintf(keyUndefined)
	}

	return r.p.Sprintf("%.2e", r.res.Diff)
}

func (r *renderer) reason() string {
	if r.res.Reason == limit.ReasonUndefined {
		return r.p.Sprintf(keyReasonUndef)
	}

	return r.p.Sprintf(keyReasonDiff)
}

// field writes "label<pad> : value".
func (r *renderer) field(key, value string) {
	r.line(padRight(r.p.Sprintf(key), labelWidth) + ": " + value)
}

func (r *renderer) line(s string) {
	r.b.WriteString(s)
	r.b.WriteByte('\n')
}

// padRight pads s with spaces to width runes; longer strings are kept.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}

	return s
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}

	return s
}
