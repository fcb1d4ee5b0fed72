// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass

// Composed effect handlers. A single Dispatch call routes an operation to
// whichever effect family it belongs to, avoiding the overhead of nesting
// independent Run* calls for multi-effect computations — the same shape as
// a multi-effect handler dispatching State, Reader, and Error from one
// Dispatch method.

// purePassHandler handles Reader(Env) + State(St) + Error(*Err) for the
// pure Pass runner. Dispatch order: Reader → State → Error.
type purePassHandler[Env, St, Err, A any] struct {
	env   *Env
	state *St
	ctx   *ErrorContext[Err]
}

func (h *purePassHandler[Env, St, Err, A]) Dispatch(op Operation) (Resumed, bool) {
	if rop, ok := op.(interface {
		DispatchReader(env *Env) (Resumed, bool)
	}); ok {
		return rop.DispatchReader(h.env)
	}
	if sop, ok := op.(interface {
		DispatchState(state *St) (Resumed, bool)
	}); ok {
		return sop.DispatchState(h.state)
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *ErrorContext[Err]) (Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.ctx)
		if h.ctx.HasErr {
			return Left[Err, A](h.ctx.Err), false
		}
		return v, true
	}
	unhandledEffect("PurePassHandler")
	return nil, false
}

// runPurePass runs a Reader+State+Error computation, returning
// (Either[Err, A], finalState).
func runPurePass[Env, St, Err, A any](env Env, state St, m Cont[Resumed, A]) (Either[Err, A], St) {
	e, s := env, state
	var ctx ErrorContext[Err]
	h := &purePassHandler[Env, St, Err, A]{env: &e, state: &s, ctx: &ctx}
	result := m(rightCont[Err, A])
	if result == nil {
		var zero A
		return Right[Err, A](zero), s
	}
	either := handleDispatch[*purePassHandler[Env, St, Err, A], Either[Err, A]](result, h)
	return either, s
}

// topPassHandler handles Reader(Env) + Accum(Env) + Writer(Output) +
// Error(*Err) for the top-level effect carrier. Dispatch order:
// Reader → Accum → Writer → Error.
type topPassHandler[Env, Output, Err, A any] struct {
	env    *Env
	accum  *AccumContext[Env]
	writer *WriterContext[Output]
	ctx    *ErrorContext[Err]
}

func (h *topPassHandler[Env, Output, Err, A]) Dispatch(op Operation) (Resumed, bool) {
	if rop, ok := op.(interface {
		DispatchReader(env *Env) (Resumed, bool)
	}); ok {
		return rop.DispatchReader(h.env)
	}
	if aop, ok := op.(interface {
		DispatchAccum(ctx *AccumContext[Env]) (Resumed, bool)
	}); ok {
		return aop.DispatchAccum(h.accum)
	}
	if wop, ok := op.(interface {
		DispatchWriter(ctx *WriterContext[Output]) (Resumed, bool)
	}); ok {
		return wop.DispatchWriter(h.writer)
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *ErrorContext[Err]) (Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.ctx)
		if h.ctx.HasErr {
			return Left[Err, A](h.ctx.Err), false
		}
		return v, true
	}
	unhandledEffect("TopPassHandler")
	return nil, false
}
