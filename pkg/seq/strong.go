package seq

import (
	"iter"

	"golang.org/x/exp/constraints"

	"memkit/pkg/strong"
)

// Strong is a Range over the underlying integers of a strong kind. Each
// emitted value is wrapped back into the kind.
type Strong[T constraints.Integer, Tag any] struct {
	r Range[T]
}

// Wrap reinterprets r as a range of Tag values.
func Wrap[Tag any, T constraints.Integer](r Range[T]) Strong[T, Tag] {
	return Strong[T, Tag]{r: r}
}

func StrongSpan[T constraints.Integer, Tag any](from, to strong.Value[T, Tag]) Strong[T, Tag] {
	return Strong[T, Tag]{r: Span(from.Get(), to.Get())}
}

func StrongSpanStep[T constraints.Integer, Tag any](from, to strong.Value[T, Tag], step T) Strong[T, Tag] {
	return Strong[T, Tag]{r: SpanStep(from.Get(), to.Get(), step)}
}

func StrongInclusive[T constraints.Integer, Tag any](from, to strong.Value[T, Tag]) Strong[T, Tag] {
	return Strong[T, Tag]{r: Inclusive(from.Get(), to.Get())}
}

func StrongInclusiveStep[T constraints.Integer, Tag any](from, to strong.Value[T, Tag], step T) Strong[T, Tag] {
	return Strong[T, Tag]{r: InclusiveStep(from.Get(), to.Get(), step)}
}

func (s Strong[T, Tag]) Range() Range[T] { return s.r }
func (s Strong[T, Tag]) Len() int        { return s.r.Len() }

func (s Strong[T, Tag]) All() iter.Seq[strong.Value[T, Tag]] {
	return func(yield func(strong.Value[T, Tag]) bool) {
		for v := range s.r.All() {
			if !yield(strong.Of[Tag](v)) {
				return
			}
		}
	}
}
