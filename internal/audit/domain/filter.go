package domain

// Filter narrows audit entry listings. Zero values mean "no filter"; Limit 0
// means no limit. Filters apply identically across backend variants.
type Filter struct {
	Actor  string
	Action string
	Target string
	Offset int
	Limit  int
}

// ByActor filters by actor DID. Chainable.
func (f Filter) ByActor(actor string) Filter {
	f.Actor = actor
	return f
}

// ByAction filters by action. Chainable.
func (f Filter) ByAction(action string) Filter {
	f.Action = action
	return f
}

// ByTarget filters by target. Chainable.
func (f Filter) ByTarget(target string) Filter {
	f.Target = target
	return f
}

// WithPagination sets offset and limit. Chainable.
func (f Filter) WithPagination(offset, limit int) Filter {
	f.Offset = offset
	f.Limit = limit
	return f
}

// Matches reports whether an entry satisfies the field filters.
// Offset and Limit are applied by the backend, not here.
func (f Filter) Matches(e *Entry) bool {
	if f.Actor != "" && e.Actor != f.Actor {
		return false
	}
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	if f.Target != "" && e.Target != f.Target {
		return false
	}
	return true
}
