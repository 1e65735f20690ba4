// Package reference provides interchangeable multipliers behind a common
// interface: the Karatsuba implementation, schoolbook multiplication and
// trusted references (math/big, and GMP when built with the gmp tag). The
// comparison harness runs several of them on the same operands and checks
// that every product agrees.
package reference

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/kmul/internal/errors"
	"github.com/agbru/kmul/internal/metrics"
	"github.com/agbru/kmul/internal/words"
)

// Options configures a multiplication.
type Options struct {
	// Threshold is the Karatsuba base-case threshold in words. Zero selects
	// words.KaratsubaThreshold. Multipliers without a threshold ignore it.
	Threshold int
}

// Multiplier defines the public interface for a multiplier. Multiply
// returns the len(a)+len(b) word product of a and b. Implementations are
// safe for concurrent use and never modify their operands.
type Multiplier interface {
	Multiply(ctx context.Context, a, b words.Nat, opts Options) (words.Nat, error)
	// Name returns the display name of the algorithm (e.g., "Karatsuba").
	Name() string
}

// coreMultiplier is the internal interface for a pure multiplication
// algorithm. It may return Stats when it tracks recursion.
type coreMultiplier interface {
	MultiplyCore(ctx context.Context, a, b words.Nat, opts Options) (words.Nat, *words.Stats, error)
	Name() string
}

// InstrumentedMultiplier wraps a coreMultiplier with tracing, metrics and
// debug logging.
type InstrumentedMultiplier struct {
	core coreMultiplier
}

// NewMultiplier wraps core. It panics if core is nil.
func NewMultiplier(core coreMultiplier) Multiplier {
	if core == nil {
		panic("reference: the `coreMultiplier` implementation cannot be nil")
	}
	return &InstrumentedMultiplier{core: core}
}

// Name returns the name of the wrapped algorithm.
func (m *InstrumentedMultiplier) Name() string {
	return m.core.Name()
}

// Multiply checks ctx, then delegates to the wrapped algorithm. A single
// multiplication is not interruptible once started.
func (m *InstrumentedMultiplier) Multiply(ctx context.Context, a, b words.Nat, opts Options) (result words.Nat, err error) {
	tracer := otel.Tracer("kmul/reference")
	ctx, span := tracer.Start(ctx, "Multiply")
	defer span.End()

	algo := m.core.Name()
	span.SetAttributes(
		attribute.String("algorithm", algo),
		attribute.Int("operand.a.words", len(a)),
		attribute.Int("operand.b.words", len(b)),
	)

	var st *words.Stats
	start := time.Now()
	defer func() {
		duration := time.Since(start)
		metrics.RecordMultiplication(algo, duration, err)
		if st != nil {
			metrics.RecordRecursion(st.MaxDepth, st.ScratchWords)
			span.SetAttributes(attribute.Int("karatsuba.max_depth", st.MaxDepth))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		ev := log.Debug().
			Str("algo", algo).
			Int("wa", len(a)).
			Int("wb", len(b)).
			Dur("duration", duration).
			Bool("ok", err == nil)
		if st != nil {
			ev = ev.Int("depth", st.MaxDepth).Int("karatsuba_calls", st.KaratsubaCalls)
		}
		ev.Msg("multiplication completed")
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	metrics.RecordOperands(len(a), len(b))
	result, st, err = m.core.MultiplyCore(ctx, a, b, opts)
	if err != nil && !apperrors.IsContextError(err) {
		err = apperrors.CalculationError{Cause: err}
	}
	return result, err
}
