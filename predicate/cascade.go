package predicate

// stage is one arithmetic level of a predicate cascade. run reports
// whether its result is certain; an uncertain result escalates to the
// next stage.
type stage[R comparable] struct {
	prec Precision
	run  func() (R, bool)
}

// evaluate runs the stages of a predicate in escalation order and returns
// the first certain result together with the precision that produced it.
// If the certain result is the zero value of R and a symbolic tie-break is
// supplied, the tie-break decides instead. The final stage must always be
// certain; evaluate panics otherwise, which indicates a broken exact
// stage rather than a recoverable condition.
func evaluate[R comparable](stages []stage[R], symbolic func() R) (R, Precision) {
	var zero R
	for _, s := range stages {
		r, ok := s.run()
		if !ok {
			continue
		}
		if r == zero && symbolic != nil {
			return symbolic(), PrecisionSymbolic
		}
		return r, s.prec
	}
	panic("predicate: exact stage did not certify a result")
}

// cascade assembles the standard three-stage escalation from per-stage
// closures and evaluates it. The extended stage may be nil, and is
// skipped entirely when the extended arithmetic is disabled.
func cascade[R comparable](double, extended, exact func() (R, bool), symbolic func() R) (R, Precision) {
	stages := make([]stage[R], 0, 3)
	stages = append(stages, stage[R]{PrecisionDouble, double})
	if hasExtended && extended != nil {
		stages = append(stages, stage[R]{PrecisionExtended, extended})
	}
	stages = append(stages, stage[R]{PrecisionExact, exact})
	return evaluate(stages, symbolic)
}
