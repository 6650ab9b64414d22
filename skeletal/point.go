package skeletal

// NewDefaultPoint returns a placeholder point without spokes.
// crest selects whether it may stand on a crest step.
func NewDefaultPoint(crest bool) *Point {
	return &Point{crest: crest}
}

// NewInteriorPoint returns a non-crest point with the given up and down spokes.
func NewInteriorPoint(up, down Spoke) *Point {
	return &Point{up: &up, down: &down}
}

// NewCrestPoint returns a crest point with up, down and crest spokes.
func NewCrestPoint(up, down, crest Spoke) *Point {
	return &Point{crest: true, up: &up, down: &down, crestSpoke: &crest}
}

// IsCrest reports whether the point lies on the crest of the skeletal sheet.
func (p *Point) IsCrest() bool {
	return p.crest
}

// UpSpoke returns the up spoke and whether it is set.
func (p *Point) UpSpoke() (Spoke, bool) {
	return spokeOf(p.up)
}

// DownSpoke returns the down spoke and whether it is set.
func (p *Point) DownSpoke() (Spoke, bool) {
	return spokeOf(p.down)
}

// CrestSpoke returns the crest spoke and whether it is set.
// Always false for interior points.
func (p *Point) CrestSpoke() (Spoke, bool) {
	return spokeOf(p.crestSpoke)
}

// SetUpSpoke replaces the up spoke and notifies subscribers.
func (p *Point) SetUpSpoke(s Spoke) {
	p.up = &s
	p.notify()
}

// SetDownSpoke replaces the down spoke and notifies subscribers.
func (p *Point) SetDownSpoke(s Spoke) {
	p.down = &s
	p.notify()
}

// SetCrestSpoke replaces the crest spoke and notifies subscribers.
// Returns ErrNotCrest on interior points and leaves them unchanged.
func (p *Point) SetCrestSpoke(s Spoke) error {
	if !p.crest {
		return ErrNotCrest
	}
	p.crestSpoke = &s
	p.notify()

	return nil
}

// ClearSpokes drops every spoke, turning the point back into a placeholder.
func (p *Point) ClearSpokes() {
	p.up, p.down, p.crestSpoke = nil, nil, nil
	p.notify()
}

// Copy returns a deep copy of the spoke data. Subscriptions are not copied.
func (p *Point) Copy() *Point {
	c := &Point{crest: p.crest}
	if p.up != nil {
		up := *p.up
		c.up = &up
	}
	if p.down != nil {
		down := *p.down
		c.down = &down
	}
	if p.crestSpoke != nil {
		cs := *p.crestSpoke
		c.crestSpoke = &cs
	}

	return c
}

// Equal reports whether both points have the same crest flag and spokes.
// Subscriptions are ignored. Two nil points are equal.
func (p *Point) Equal(o *Point) bool {
	if p == nil || o == nil {
		return p == o
	}

	return p.crest == o.crest &&
		spokePtrEqual(p.up, o.up) &&
		spokePtrEqual(p.down, o.down) &&
		spokePtrEqual(p.crestSpoke, o.crestSpoke)
}

// Observe registers fn to run after every successful mutation of p.
// The returned ObserverID removes the subscription via Unobserve.
func (p *Point) Observe(fn func(*Point)) ObserverID {
	p.nextID++
	p.observers = append(p.observers, observer{id: p.nextID, fn: fn})

	return p.nextID
}

// Unobserve removes the subscription id. It reports whether id was registered.
func (p *Point) Unobserve(id ObserverID) bool {
	for i, o := range p.observers {
		if o.id == id {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return true
		}
	}

	return false
}

// NumObservers returns the number of active subscriptions.
func (p *Point) NumObservers() int {
	return len(p.observers)
}

// notify runs callbacks over a snapshot so they may unsubscribe themselves.
func (p *Point) notify() {
	if len(p.observers) == 0 {
		return
	}
	snapshot := make([]observer, len(p.observers))
	copy(snapshot, p.observers)
	for _, o := range snapshot {
		o.fn(p)
	}
}

func spokeOf(s *Spoke) (Spoke, bool) {
	if s == nil {
		return Spoke{}, false
	}

	return *s, true
}

func spokePtrEqual(a, b *Spoke) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
