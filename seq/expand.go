// Copyright © 2024 The seqgen authors

package seq

// Expand materializes a range expression into the ordered, possibly
// empty sequence of integers it denotes.
//
// The direction of travel is determined solely by the evaluated bounds:
// ascending when end >= start, descending otherwise.  An explicit step
// contributes only its magnitude; its sign is normalized to the direction
// of travel, so `{9..0, s:3}` and `{9..0, s:-3}` generate the same
// sequence.  A step of magnitude zero generates nothing.
//
// A mutation is applied to each generated position to produce the emitted
// value, but the next position is always computed from the unmutated
// running position.
func Expand(input []rune, r RangeExpr) ([]int64, error) {
	start, err := Eval(input, r.Start)
	if err != nil {
		return nil, err
	}
	end, err := Eval(input, r.End)
	if err != nil {
		return nil, err
	}
	step := int64(1)
	if r.Step != nil {
		step, err = Eval(input, r.Step)
		if err != nil {
			return nil, err
		}
		if step < 0 {
			step = -step
		}
		if step == 0 {
			return nil, nil
		}
	}
	if end < start {
		step = -step
	}
	var out []int64
	for pos := start; inBounds(pos, end, step, r.Inclusive); {
		v := pos
		if r.Mutation != nil {
			v, err = evalRPN(input, r.Mutation.RPN, &pos)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, v)
		next := pos + step
		// A position within one step of the int64 boundary has nothing
		// left in bounds; a wrapped sum must not re-enter the range.
		if step > 0 && next < pos {
			break
		}
		if step < 0 && next > pos {
			break
		}
		pos = next
	}
	return out, nil
}

// inBounds reports whether pos may still be emitted: an inclusive range
// may generate end itself while an exclusive range stops strictly before
// it.
func inBounds(pos, end, step int64, inclusive bool) bool {
	if step > 0 {
		if inclusive {
			return pos <= end
		}
		return pos < end
	}
	if inclusive {
		return pos >= end
	}
	return pos > end
}
