package allocator

// ShortfallReason explains why a subject did not receive all of its hours
type ShortfallReason string

const (
	// ReasonNoEligibleTeacher means no lesson was ever scheduled for the subject
	ReasonNoEligibleTeacher ShortfallReason = "no_eligible_teacher"

	// ReasonTermEnded means lessons were scheduled but the term ran out first
	ReasonTermEnded ShortfallReason = "term_ended"
)

// Shortfall records a subject that still has hours left after allocation
type Shortfall struct {
	Group          string          `json:"group"`
	Subject        string          `json:"subject"`
	Semester       int             `json:"semester"`
	TotalHours     int             `json:"totalHours"`
	ScheduledHours int             `json:"scheduledHours"`
	RemainingHours int             `json:"remainingHours"`
	Reason         ShortfallReason `json:"reason"`
}

// AllocationOutcome represents the result of a schedule generation
type AllocationOutcome struct {
	// Schedule is the generated timetable
	Schedule *Schedule

	// States is the final working state of every (group, subject) pair in index order
	States []*SubjectState

	// Shortfalls lists subjects that did not receive all of their hours
	Shortfalls []Shortfall

	// Complete indicates every subject received its hours and the schedule passed validation
	Complete bool

	// ValidationErrors contains any rule violations found in the final schedule
	ValidationErrors []LessonValidationError
}
