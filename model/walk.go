package model

// LinksOf returns the link array embedded in a decoded body, or nil when
// the body's type does not build on Resource.
func LinksOf(v any) []*Link {
	if r, ok := v.(hasResource); ok {
		return r.resource().Link
	}
	return nil
}

// TasksOf returns the running task list embedded in a decoded body, or nil
// when the body's type does not build on Entity.
func TasksOf(v any) []*Task {
	if e, ok := v.(hasEntity); ok {
		return e.entity().Tasks
	}
	return nil
}
