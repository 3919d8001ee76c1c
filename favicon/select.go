package favicon

// Width returns the declared width of a sizes attribute: the leading run of
// digits before the "x" of "WxH". SizesUnknown, "any" and anything without
// a leading number count as 0.
func Width(sizes string) int {
	w := 0
	for i := 0; i < len(sizes); i++ {
		c := sizes[i]
		if c < '0' || c > '9' {
			break
		}
		w = w*10 + int(c-'0')
		if w > 1<<20 {
			// absurd declarations are capped, not overflowed
			return 1 << 20
		}
	}
	return w
}

// Select picks one candidate. Without preferLarger the first declared icon
// wins. With preferLarger the widest icon wins and ties keep the earliest
// one. ok is false for an empty list.
func Select(icons []IconCandidate, preferLarger bool) (selected IconCandidate, ok bool) {
	if len(icons) == 0 {
		return IconCandidate{}, false
	}
	selected = icons[0]
	if !preferLarger {
		return selected, true
	}
	best := Width(selected.Sizes)
	for _, c := range icons[1:] {
		if w := Width(c.Sizes); w > best {
			selected, best = c, w
		}
	}
	return selected, true
}
