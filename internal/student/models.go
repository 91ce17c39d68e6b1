package student

// Student is a school member record. BeltRank is the current belt, used to
// seed new assessments and as input to the rank resolver; promotion updates
// it after a passed, completed assessment.
type Student struct {
	ID        string `json:"student_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	BeltRank  string `json:"beltRank"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at,omitempty"`
}
