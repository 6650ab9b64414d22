package elliptical

// Observe registers fn to run on every modification notification of s.
func (s *SRep) Observe(fn func(*SRep)) ObserverID {
	s.nextObserverID++
	s.observers = append(s.observers, observer{id: s.nextObserverID, fn: fn})

	return s.nextObserverID
}

// Unobserve removes the subscription id. It reports whether id was registered.
func (s *SRep) Unobserve(id ObserverID) bool {
	for i, o := range s.observers {
		if o.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return true
		}
	}

	return false
}

// Modified publishes a change to observers. While a block is active the
// notification is deferred to the final UnblockModify.
func (s *SRep) Modified() {
	if s.modifyBlocks > 0 {
		s.modifiedDuringBlock = true
		return
	}
	snapshot := make([]observer, len(s.observers))
	copy(snapshot, s.observers)
	for _, o := range snapshot {
		o.fn(s)
	}
}

// BlockModify suspends modification notifications. Blocks nest.
func (s *SRep) BlockModify() {
	s.modifyBlocks++
}

// UnblockModify ends one block. When the last block ends and anything was
// modified meanwhile, exactly one notification is published. Without an
// active block it does nothing.
func (s *SRep) UnblockModify() {
	if s.modifyBlocks == 0 {
		return
	}
	s.modifyBlocks--
	if s.modifyBlocks == 0 && s.modifiedDuringBlock {
		s.modifiedDuringBlock = false
		s.Modified()
	}
}

// ModifiedBlocker blocks notifications and returns the matching release.
// Calling release more than once has no further effect.
//
//	release := s.ModifiedBlocker()
//	defer release()
func (s *SRep) ModifiedBlocker() (release func()) {
	s.BlockModify()
	released := false

	return func() {
		if released {
			return
		}
		released = true
		s.UnblockModify()
	}
}

// Batch runs fn with notifications blocked and releases the block on every
// exit path, panics included. It returns fn's error.
func (s *SRep) Batch(fn func() error) error {
	release := s.ModifiedBlocker()
	defer release()

	return fn()
}
