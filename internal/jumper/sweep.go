package jumper

// compactStable removes the elements for which keep returns false,
// preserving the order of the rest. It reuses the backing array.
func compactStable[T any](s []T, keep func(*T) bool) []T {
	n := 0
	for i := range s {
		if keep(&s[i]) {
			if n != i {
				s[n] = s[i]
			}
			n++
		}
	}
	clear(s[n:])
	return s[:n]
}

// compactSwap removes the elements for which keep returns false by moving the
// last element into each hole. Order is not preserved.
func compactSwap[T any](s []T, keep func(*T) bool) []T {
	var zero T
	for i := 0; i < len(s); {
		if keep(&s[i]) {
			i++
			continue
		}
		last := len(s) - 1
		s[i] = s[last]
		s[last] = zero
		s = s[:last]
	}
	return s
}

func platformAlive(p *Platform) bool { return p.Active }
func itemAlive(it *Item) bool        { return !it.Consumed }
func enemyAlive(en *Enemy) bool      { return en.Active }
