package maxfog

// The alphabet is walked in pairs (A[0],A[1]), (A[2],A[3]), ... Each pair
// before the one holding the target symbol costs a single skip bit; the
// pair holding the symbol costs two bits (a `0` continue-prefix followed by
// the in-pair selector), unless it is also the final pair, in which case the
// leading prefix is dropped: a two-element final pair costs one bit, a
// one-element (odd n) final pair costs zero bits and is implicit.

// pairCount returns the number of pairs the alphabet is split into.
func pairCount(n int) int {
	return (n + 1) / 2
}

// isLastPair reports whether pairIdx is the final pair of an n-symbol
// alphabet.
func isLastPair(n, pairIdx int) bool {
	return pairIdx == pairCount(n)-1
}

// isSingletonLastPair reports whether the final pair holds only one symbol
// (true exactly when n is odd).
func isSingletonLastPair(n int) bool {
	return n%2 == 1
}

// symbolBitCost returns the number of grammar bits needed to identify the
// symbol at alphabet index idx, not counting the leading zero/non-zero
// escape bit.
func symbolBitCost(n, idx int) int {
	pairIdx := idx / 2
	cost := pairIdx // one skip bit per preceding pair
	switch {
	case isLastPair(n, pairIdx) && isSingletonLastPair(n):
		// implicit, no bits
	case isLastPair(n, pairIdx):
		cost++
	default:
		cost += 2
	}
	return cost
}

// encodeSymbolBits appends the grammar bits identifying alphabet index idx
// (within an n-symbol alphabet) to emit, in order.
func encodeSymbolBits(n, idx int, emit func(bit int)) {
	pairIdx := idx / 2
	for p := 0; p < pairIdx; p++ {
		emit(1)
	}
	second := idx%2 == 1
	switch {
	case isLastPair(n, pairIdx) && isSingletonLastPair(n):
		return
	case isLastPair(n, pairIdx):
		if second {
			emit(1)
		} else {
			emit(0)
		}
	default:
		emit(0)
		if second {
			emit(1)
		} else {
			emit(0)
		}
	}
}

// decodeSymbolIndex consumes grammar bits from next (which must return
// (bit, true) while bits remain, (_, false) on exhaustion) and returns the
// alphabet index of the decoded symbol.
func decodeSymbolIndex(n int, next func() (int, bool)) (int, error) {
	pairIdx := 0
	for {
		if isLastPair(n, pairIdx) {
			if isSingletonLastPair(n) {
				return 2 * pairIdx, nil
			}
			bit, ok := next()
			if !ok {
				return 0, ErrCorruptPayload
			}
			if bit == 0 {
				return 2 * pairIdx, nil
			}
			return 2*pairIdx + 1, nil
		}
		bit, ok := next()
		if !ok {
			return 0, ErrCorruptPayload
		}
		if bit == 1 {
			pairIdx++
			continue
		}
		bit2, ok := next()
		if !ok {
			return 0, ErrCorruptPayload
		}
		if bit2 == 0 {
			return 2 * pairIdx, nil
		}
		return 2*pairIdx + 1, nil
	}
}
