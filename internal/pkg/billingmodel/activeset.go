package billingmodel

// Operations on the merchant's active billing-model set. All functions
// return a fresh slice and never mutate their input, so callers can rely on
// simple equality-based change detection.

// Add appends a model to the set. The first model added to an empty set
// becomes primary; later additions never are, and existing members keep
// their flags.
func Add(set []SelectedModel, model SelectedModel) []SelectedModel {
	model.IsActive = true
	model.IsPrimary = len(set) == 0
	out := make([]SelectedModel, 0, len(set)+1)
	out = append(out, set...)
	return append(out, model)
}

// Remove drops the model with the given id. Removing the primary model
// does not promote a replacement; the set may be left with zero primaries
// and consumers fall back to the first member (see Primary).
func Remove(set []SelectedModel, id int) []SelectedModel {
	out := make([]SelectedModel, 0, len(set))
	for _, m := range set {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// SetPrimary marks the model with the given id as primary and unsets all
// others. When no member matches, the set is returned unchanged.
func SetPrimary(set []SelectedModel, id int) []SelectedModel {
	found := false
	for _, m := range set {
		if m.ID == id {
			found = true
			break
		}
	}
	if !found {
		out := make([]SelectedModel, len(set))
		copy(out, set)
		return out
	}
	out := make([]SelectedModel, 0, len(set))
	for _, m := range set {
		m.IsPrimary = m.ID == id
		out = append(out, m)
	}
	return out
}

// Primary returns the set's primary model, falling back to the first
// member when no primary flag is set. The second return is false for an
// empty set.
func Primary(set []SelectedModel) (SelectedModel, bool) {
	for _, m := range set {
		if m.IsPrimary {
			return m, true
		}
	}
	if len(set) > 0 {
		return set[0], true
	}
	return SelectedModel{}, false
}
