package domain

// Teacher is the detail projection served by the teacher endpoint.
type Teacher struct {
	ID        string  `db:"id" json:"id"`
	TeacherNo string  `db:"teacher_no" json:"teacherNo"`
	Name      string  `db:"name" json:"name"`
	Dept      *string `db:"dept" json:"dept"`
}

// TeacherRow is the selector projection used by the search and ranking
// queries. Only the columns the merge step needs are carried.
type TeacherRow struct {
	ID   string  `db:"id" json:"id"`
	Name string  `db:"name" json:"name"`
	Dept *string `db:"dept" json:"dept"`
}
