package db

// SubjectHours is one (specialty, subject, semester) hour total.
// Row order defines subject order within a specialty.
type SubjectHours struct {
	Specialty string `ssql_header:"specialty" ssql_type:"text"`
	Subject   string `ssql_header:"subject" ssql_type:"text"`
	Semester  int    `ssql_header:"semester" ssql_type:"int"`
	Hours     int    `ssql_header:"hours" ssql_type:"int"`
}

// Teacher represents a teacher record
type Teacher struct {
	Name          string   `ssql_header:"name" ssql_type:"text"`
	Subject       string   `ssql_header:"subject" ssql_type:"text"`
	Groups        []string `ssql_header:"groups" ssql_type:"list"`
	PreferredDays []int    `ssql_header:"preferred_days" ssql_type:"int_list"`
}

// Group represents a student group record
type Group struct {
	Name      string `ssql_header:"name" ssql_type:"text"`
	Specialty string `ssql_header:"specialty" ssql_type:"text"`
	Semester  int    `ssql_header:"semester" ssql_type:"int"`
}

func (Group) TableName() string {
	return "student_group"
}
