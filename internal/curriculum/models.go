package curriculum

// BeltRequirement is one rung of the school's belt ladder: the ordered rank
// itself plus the technique lists a student testing for that rank is graded
// on. Records are authored by an administrator and read-only everywhere else;
// resolver and matcher functions receive the full ordered set by parameter.
type BeltRequirement struct {
	BeltOrder int    `json:"beltOrder"`
	BeltRank  string `json:"beltRank"`

	Forms       []string `json:"forms"`
	Stances     []string `json:"stances"`
	Blocks      []string `json:"blocks"`
	Punches     []string `json:"punches"`
	Kicks       []string `json:"kicks"`
	Jumps       []string `json:"jumps"`
	Falling     []string `json:"falling"`
	OneSteps    []string `json:"oneSteps"`
	SelfDefense []string `json:"selfDefense"`

	Color     string `json:"color"`     // #RRGGBB; #FFFFFF belts get an outline border in the UI
	TextColor string `json:"textColor"` // #RRGGBB
	Comments  string `json:"comments,omitempty"`
}
