package assessment

// Category names mirror the list fields on a curriculum.BeltRequirement.
// SelfDefense is the merged self-defense + one-steps category: relevance for
// those fields is tested against the union of both lists.
type Category string

const (
	CategoryForms       Category = "forms"
	CategoryStances     Category = "stances"
	CategoryBlocks      Category = "blocks"
	CategoryPunches     Category = "punches"
	CategoryKicks       Category = "kicks"
	CategorySelfDefense Category = "selfDefense"
)

// ScoreField is one scoreable slot on an assessment form. Synonyms are the
// phrasings curriculum authors are known to use for the technique; matching
// is fuzzy (bidirectional substring, case-insensitive) on purpose so "Front
// Kick" in a requirement list still lights up the front_kick field.
type ScoreField struct {
	Name     string
	Category Category
	Synonyms []string
}

// ScoreFields is the fixed registry of assessment score fields. Each field
// belongs to exactly one category. Order here is the display order.
var ScoreFields = []ScoreField{
	{Name: "form", Category: CategoryForms, Synonyms: []string{"form", "hyung"}},
	{Name: "made_up_form", Category: CategoryForms, Synonyms: []string{"made up form", "made up"}},

	{Name: "stance_front", Category: CategoryStances, Synonyms: []string{"front stance", "forward stance"}},
	{Name: "stance_back", Category: CategoryStances, Synonyms: []string{"back stance"}},
	{Name: "stance_horse", Category: CategoryStances, Synonyms: []string{"horse stance", "horse riding stance"}},
	{Name: "stance_fighting", Category: CategoryStances, Synonyms: []string{"fighting stance", "sparring stance"}},

	{Name: "high_block", Category: CategoryBlocks, Synonyms: []string{"high block", "rising block"}},
	{Name: "low_block", Category: CategoryBlocks, Synonyms: []string{"low block", "down block"}},
	{Name: "inside_block", Category: CategoryBlocks, Synonyms: []string{"inside block", "inner block"}},
	{Name: "outside_block", Category: CategoryBlocks, Synonyms: []string{"outside block", "outer block"}},
	{Name: "knife_hand_block", Category: CategoryBlocks, Synonyms: []string{"knife hand block"}},

	{Name: "straight_punch", Category: CategoryPunches, Synonyms: []string{"straight punch"}},
	{Name: "reverse_punch", Category: CategoryPunches, Synonyms: []string{"reverse punch"}},
	{Name: "jab", Category: CategoryPunches, Synonyms: []string{"jab"}},

	{Name: "front_kick", Category: CategoryKicks, Synonyms: []string{"front kick"}},
	{Name: "round_kick", Category: CategoryKicks, Synonyms: []string{"round kick", "roundhouse kick"}},
	{Name: "side_kick", Category: CategoryKicks, Synonyms: []string{"side kick"}},
	{Name: "back_kick", Category: CategoryKicks, Synonyms: []string{"back kick"}},
	{Name: "hook_kick", Category: CategoryKicks, Synonyms: []string{"hook kick"}},
	{Name: "axe_kick", Category: CategoryKicks, Synonyms: []string{"axe kick", "ax kick"}},
	{Name: "crescent_kick", Category: CategoryKicks, Synonyms: []string{"crescent kick"}},
	{Name: "jump_front_kick", Category: CategoryKicks, Synonyms: []string{"jump front kick", "jumping front kick"}},
	{Name: "jump_round_kick", Category: CategoryKicks, Synonyms: []string{"jump round kick", "jumping round kick"}},

	{Name: "one_steps", Category: CategorySelfDefense, Synonyms: []string{"one step", "one-step"}},
	{Name: "made_up_one_steps", Category: CategorySelfDefense, Synonyms: []string{"made up one step", "made up"}},
	{Name: "self_defense", Category: CategorySelfDefense, Synonyms: []string{"self defense", "self-defense"}},
}

var fieldsByName = func() map[string]ScoreField {
	m := make(map[string]ScoreField, len(ScoreFields))
	for _, f := range ScoreFields {
		m[f.Name] = f
	}
	return m
}()

// FieldByName returns the registry entry for name, if any.
func FieldByName(name string) (ScoreField, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

// FieldNames returns all registry field names in display order.
func FieldNames() []string {
	out := make([]string, len(ScoreFields))
	for i, f := range ScoreFields {
		out[i] = f.Name
	}
	return out
}
