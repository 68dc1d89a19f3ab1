package domain

// GroupByCategory buckets skills by their category label. Within a bucket the
// input order is kept. Labels outside SkillCategories get their own bucket.
func GroupByCategory(skills []Skill) map[string][]Skill {
	out := make(map[string][]Skill)
	for _, s := range skills {
		out[s.Category] = append(out[s.Category], s)
	}
	return out
}
