package logs

import "context"

// Span identifies one unit of work, such as a command line job, across log
// records and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey

func (s Span) String() string {
	return string(s)
}

// SpanFrom returns the span ctx carries, or "".
func SpanFrom(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}
