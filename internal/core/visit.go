package core

// EqualAll reports whether a and b compare equal on every axis.
func (t *Tree[T]) EqualAll(a, b T) bool {
	for d := 0; d < t.Dim; d++ {
		if t.Cmp(a, b, d) != 0 {
			return false
		}
	}
	return true
}

// ForEachEqual visits every stored value equal to key across all dimensions.
// cb returns true to cancel; ForEachEqual returns true iff it was canceled.
func (t *Tree[T]) ForEachEqual(key T, cb func(T) bool) bool {
	if len(t.V) == 0 {
		return false
	}
	return t.visitEqual(key, 0, len(t.V)-1, 0, cb)
}

func (t *Tree[T]) visitEqual(key T, l, r, depth int, cb func(T) bool) bool {
	m := (l + r) / 2
	if t.EqualAll(key, t.V[m]) {
		if cb(t.V[m]) {
			return true
		}
	}
	d := depth % t.Dim
	c := t.Cmp(key, t.V[m], d)
	if c >= 0 && m+1 <= r {
		if t.visitEqual(key, m+1, r, depth+1, cb) {
			return true
		}
	}
	if c < 0 || (c == 0 && t.Dirty.Get(m)) {
		if l <= m-1 {
			if t.visitEqual(key, l, m-1, depth+1, cb) {
				return true
			}
		}
	}
	return false
}

// ContainsEqual reports whether any stored value equals key, short-circuiting
// on the first match.
func (t *Tree[T]) ContainsEqual(key T) bool {
	found := false
	t.ForEachEqual(key, func(T) bool {
		found = true
		return true
	})
	return found
}

// inRange reports whether v falls within [lo, hi] on every dimension. A nil
// bound is unconstrained on that side. hi is inclusive iff hiInclusive.
func (t *Tree[T]) inRange(v T, lo, hi *T, hiInclusive bool) bool {
	for d := 0; d < t.Dim; d++ {
		if lo != nil && t.Cmp(v, *lo, d) < 0 {
			return false
		}
		if hi != nil {
			c := t.Cmp(v, *hi, d)
			if hiInclusive {
				if c > 0 {
					return false
				}
			} else if c >= 0 {
				return false
			}
		}
	}
	return true
}

// ForEachRange visits every stored value v with lo <= v and (v <= hi if
// hiInclusive else v < hi), comparing dimension by dimension. Either bound
// may be nil to leave that side unconstrained. cb returns true to cancel;
// ForEachRange returns true iff it was canceled.
func (t *Tree[T]) ForEachRange(lo, hi *T, hiInclusive bool, cb func(T) bool) bool {
	if len(t.V) == 0 {
		return false
	}
	if lo != nil && hi != nil {
		for d := 0; d < t.Dim; d++ {
			if t.Cmp(*lo, *hi, d) > 0 {
				return false
			}
		}
	}
	return t.visitRange(lo, hi, hiInclusive, 0, len(t.V)-1, 0, cb)
}

func (t *Tree[T]) visitRange(lo, hi *T, hiInclusive bool, l, r, depth int, cb func(T) bool) bool {
	m := (l + r) / 2
	if t.inRange(t.V[m], lo, hi, hiInclusive) {
		if cb(t.V[m]) {
			return true
		}
	}
	d := depth % t.Dim

	rightOK := hi == nil
	if hi != nil {
		rightOK = t.Cmp(*hi, t.V[m], d) >= 0
	}
	if rightOK && m+1 <= r {
		if t.visitRange(lo, hi, hiInclusive, m+1, r, depth+1, cb) {
			return true
		}
	}

	leftOK := lo == nil
	if lo != nil {
		leftOK = t.Cmp(*lo, t.V[m], d) <= 0
	}
	if !leftOK && hi != nil && t.Dirty.Get(m) && t.Cmp(*hi, t.V[m], d) == 0 {
		leftOK = true
	}
	if leftOK && l <= m-1 {
		if t.visitRange(lo, hi, hiInclusive, l, m-1, depth+1, cb) {
			return true
		}
	}
	return false
}
