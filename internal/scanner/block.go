package scanner

// state is carried from the end of one block to the start of the next.
// The zero value behaves as if the input were preceded by ASCII.
type state struct {
	input  lane // last lane of the previous block
	follow lane // its continuation counts
}

// validateLane classifies one lane. prevIn and prevFollow are the lane that
// precedes it in the input, either earlier in the same block or carried over
// from the previous block. Errors are OR-ed into errs.
func validateLane(in, follow, prevIn, prevFollow, errs *lane) {
	rng := rangeIndex(in, follow, prevIn, prevFollow)
	lo := lookup(&rangeMinTable, &rng)
	hi := lookup(&rangeMaxTable, &rng)
	outOfRange(errs, in, &lo, &hi)
}

// rangeIndex computes the range table index of every byte in the lane.
func rangeIndex(in, follow, prevIn, prevFollow *lane) lane {
	nibbles := highNibbles(in)

	// range is 8 for any lead byte, overlap will lead to 9, 10, 11
	rng := lookup(&rangeBaseTable, &nibbles)

	// 2nd byte
	shifted := alignr(follow, prevFollow, 1)
	or(&rng, &shifted)

	// 3rd byte
	sub, subPrev := subs(follow, 1), subs(prevFollow, 1)
	shifted = alignr(&sub, &subPrev, 2)
	or(&rng, &shifted)

	// 4th byte
	sub, subPrev = subs(follow, 2), subs(prevFollow, 2)
	shifted = alignr(&sub, &subPrev, 3)
	or(&rng, &shifted)

	// second bytes outside 80..BF
	prev1 := alignr(in, prevIn, 1)
	addEq(&rng, &prev1, 0xE0, fixE0)
	addEq(&rng, &prev1, 0xED, fixED)
	addEq(&rng, &prev1, 0xF0, fixF0)
	addEq(&rng, &prev1, 0xF4, fixF4)
	return rng
}

// validateBlock runs the range algorithm over len(block)/laneSize lanes and
// leaves the last lane in st for the next call.
func validateBlock(block []byte, errs *lane, st *state) {
	// Pure ASCII with nothing owed from the previous block cannot fail.
	if st.follow.isZero() && isASCII(block) {
		st.input = loadLane(block[len(block)-laneSize:])
		st.follow = lane{}
		return
	}

	prevIn, prevFollow := st.input, st.follow
	for off := 0; off < len(block); off += laneSize {
		in := loadLane(block[off:])
		nibbles := highNibbles(&in)
		follow := lookup(&followTable, &nibbles)

		validateLane(&in, &follow, &prevIn, &prevFollow, errs)

		prevIn, prevFollow = in, follow
	}
	st.input, st.follow = prevIn, prevFollow
}

// lookahead returns how many trailing bytes of the last processed lane may
// start a sequence whose continuation bytes were not seen yet. Anything that
// is not a continuation byte within the last three positions counts.
func lookahead(last *lane) int {
	for k := 1; k <= 3; k++ {
		if last[laneSize-k]&0xC0 != 0x80 {
			return k
		}
	}
	return 0
}
