package merge

// pair couples an active node with its same-named shadow counterpart. Either
// side may be nil: a nil shadow means nothing to recover, a nil active means
// the node exists only in the shadow and is preserved verbatim.
type pair[T interface{ GetName() string }] struct {
	active T
	shadow T
}

// pairByName produces the deterministic merge order: active nodes first, in
// active order, each with its shadow counterpart if one exists; then
// shadow-only nodes in shadow order.
func pairByName[T interface{ GetName() string }](active, shadow []T) []pair[T] {
	shadowByName := make(map[string]T, len(shadow))
	for _, s := range shadow {
		shadowByName[s.GetName()] = s
	}
	activeNames := make(map[string]struct{}, len(active))
	pairs := make([]pair[T], 0, len(active)+len(shadow))
	for _, a := range active {
		activeNames[a.GetName()] = struct{}{}
		pairs = append(pairs, pair[T]{active: a, shadow: shadowByName[a.GetName()]})
	}
	for _, s := range shadow {
		if _, ok := activeNames[s.GetName()]; !ok {
			pairs = append(pairs, pair[T]{shadow: s})
		}
	}
	return pairs
}
