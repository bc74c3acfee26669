package topology

// coreRelations spreads logical processor ids over physical cores, giving
// the first cores one extra thread when the counts do not divide evenly.
func coreRelations(physical, logical int) []Relation {
	if physical <= 0 || logical < physical {
		return nil
	}
	per, extra := logical/physical, logical%physical

	rels := make([]Relation, 0, physical)
	next := 0
	for i := 0; i < physical; i++ {
		n := per
		if i < extra {
			n++
		}
		ids := make([]int, n)
		for j := range ids {
			ids[j] = next
			next++
		}
		rels = append(rels, Relation{Kind: RelationProcessorCore, Mask: MaskOf(ids...)})
	}
	return rels
}
