package slugify

// action is the per-codepoint policy shared by the size estimator and the
// slug generator. Both passes must agree byte-for-byte on what a codepoint
// contributes, so the policy lives in one classifier instead of being
// expressed twice.
type action uint8

const (
	actionDrop action = iota
	actionCopy
	actionReplace
	actionSeparator
	actionRaw
)

// classify decides what the generator does with cp: copy the ASCII byte,
// write a transliteration replacement, emit (at most) one separator for the
// current run, copy the raw UTF-8 bytes, or drop the character.
func (o *options) classify(cp rune) (action, string) {
	if cp < 0x80 {
		b := byte(cp)
		if isASCIIAlnum(b) {
			return actionCopy, ""
		}
		if repl, ok := o.table.Lookup(cp); ok {
			return actionReplace, repl
		}
		if isASCIISpace(b) || isASCIIPunct(b) {
			return actionSeparator, ""
		}
		// Control characters.
		return actionDrop, ""
	}
	if !o.lowercase {
		return actionRaw, ""
	}
	if repl, ok := o.table.Lookup(cp); ok {
		return actionReplace, repl
	}
	return actionDrop, ""
}

// estimate computes the exact number of bytes generate will write for the
// same input and options, before MaxLength truncation and the trailing
// separator trim. It replays the generator's decisions, including separator
// run collapsing, by tracking the last byte the generator would have written.
// The result is the capacity contract generate must never exceed.
func estimate(input string, o *options) int {
	n := 0
	last := byte(0)
	for i := 0; i < len(input); {
		cp, size := decodeRune(input, i)
		act, repl := o.classify(cp)
		switch act {
		case actionCopy:
			n++
			last = o.convertCase(byte(cp))
		case actionReplace:
			if repl != "" {
				n += len(repl)
				last = o.convertCase(repl[len(repl)-1])
			}
		case actionSeparator:
			if n > 0 && last != o.separator {
				n++
				last = o.separator
			}
		case actionRaw:
			n += size
			last = input[i+size-1]
		}
		i += size
	}
	return n
}

// generate writes the slug for input into a buffer of exactly capacity bytes,
// as computed by estimate. It enforces MaxLength at write time: a
// transliteration replacement may be cut off mid-expansion when the limit is
// reached (longstanding behavior, pinned by tests), while a raw multi-byte
// character that does not fit ends generation instead of being split.
// Exceeding capacity means the two passes disagree; generation fails with
// ErrBufferCapacity rather than growing the buffer.
func generate(input string, o *options, capacity int) ([]byte, error) {
	out := make([]byte, 0, capacity)
loop:
	for i := 0; i < len(input); {
		if o.maxLength > 0 && len(out) >= o.maxLength {
			break
		}
		cp, size := decodeRune(input, i)
		act, repl := o.classify(cp)
		switch act {
		case actionCopy:
			if len(out) >= capacity {
				return nil, ErrBufferCapacity
			}
			out = append(out, o.convertCase(byte(cp)))
		case actionReplace:
			for k := 0; k < len(repl); k++ {
				if o.maxLength > 0 && len(out) >= o.maxLength {
					break
				}
				if len(out) >= capacity {
					return nil, ErrBufferCapacity
				}
				out = append(out, o.convertCase(repl[k]))
			}
		case actionSeparator:
			if len(out) > 0 && out[len(out)-1] != o.separator {
				if len(out) >= capacity {
					return nil, ErrBufferCapacity
				}
				out = append(out, o.separator)
			}
		case actionRaw:
			if o.maxLength > 0 && len(out)+size > o.maxLength {
				break loop
			}
			if len(out)+size > capacity {
				return nil, ErrBufferCapacity
			}
			out = append(out, input[i:i+size]...)
		}
		i += size
	}

	if n := len(out); n > 0 && out[n-1] == o.separator {
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, ErrEmptyResult
	}
	return out, nil
}

func (o *options) convertCase(b byte) byte {
	if o.lowercase && b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func isASCIIAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isASCIIPunct reports printable ASCII that is neither alphanumeric nor a
// space, matching C's ispunct in the "C" locale.
func isASCIIPunct(b byte) bool {
	return b > 0x20 && b < 0x7F && !isASCIIAlnum(b)
}
