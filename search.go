package kmp

// FindIndex returns the start index of the first occurrence of the compiled
// pattern in text, or -1 if the pattern does not occur. Single forward pass
// over text, one transition per byte, no backtracking.
func (d *DFA) FindIndex(text []byte) int {
	state := 0
	for i := 0; i < len(text); i++ {
		state = d.next[int(text[i])*d.m+state]
		if state >= d.m {
			return i - d.m + 1
		}
	}
	return -1
}

// FindIndexString is FindIndex over the raw bytes of text.
func (d *DFA) FindIndexString(text string) int {
	state := 0
	for i := 0; i < len(text); i++ {
		state = d.next[int(text[i])*d.m+state]
		if state >= d.m {
			return i - d.m + 1
		}
	}
	return -1
}

// Run Returns true if the pattern occurs in the given byte array.
func (d *DFA) Run(s []byte) bool {
	return d.FindIndex(s) >= 0
}

// Index compiles pattern and scans text once, for one-shot callers. Reuse a
// compiled DFA instead when searching more than one text.
func Index(text, pattern []byte) (int, error) {
	d, err := Compile(pattern)
	if err != nil {
		return -1, err
	}
	return d.FindIndex(text), nil
}
