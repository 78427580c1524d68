package extraction

// Category binds a form template to the trigger keywords that select it and
// the recipe used to fill its fields. Categories are evaluated in the order
// they appear in the table; the first one with a trigger hit wins, so a
// transcript mentioning both a lesson plan and a meeting is always treated as
// a lesson plan. Adding a category is a data change, not a code change.
type Category struct {
	TemplateID   string
	TemplateName string
	Triggers     []string
	Fields       []FieldRule
}

// FieldRule describes how one field of a matched template is populated.
//
// A keyword rule (Candidates non-empty) scans the candidate phrases in
// declared order and yields the first one present in the transcript as a
// case-insensitive substring, falling back to Default. A literal rule yields
// Literal verbatim, or the engine clock's date when CurrentDate is set.
type FieldRule struct {
	Name        string
	Candidates  []string
	Default     string
	Literal     string
	CurrentDate bool
}

// defaultCategories is the built-in category table. The trigger phrases and
// candidate lists are matched as raw substrings, so short candidates can hit
// inside unrelated words; in particular the progress-report grade order
// (b+, a-, b, a) is known to misfire on transcripts containing a bare "a" or
// "b". The order is kept as-is for compatibility with saved conversions.
var defaultCategories = []Category{
	{
		TemplateID:   "template_1",
		TemplateName: "Lesson Plan Template",
		Triggers:     []string{"lesson plan", "calculus", "derivatives", "teaching", "objectives"},
		Fields: []FieldRule{
			{Name: "subject", Candidates: []string{"calculus", "mathematics", "algebra", "statistics"}, Default: "Advanced Calculus"},
			{Name: "grade", Candidates: []string{"grade 12", "grade 11", "grade 10", "grade 9"}, Default: "Grade 12"},
			{Name: "topic", Candidates: []string{"derivatives", "chain rule", "product rule", "integration"}, Default: "Derivatives and Chain Rule"},
			{Name: "objectives", Literal: "Students will understand and apply the chain rule and product rule for derivatives, and solve practical application problems."},
			{Name: "duration", Candidates: []string{"60 minutes", "90 minutes", "45 minutes"}, Default: "60"},
			{Name: "materials", Candidates: []string{"graphing calculators", "textbooks", "worksheets"}, Default: "Graphing calculators, whiteboard, practice worksheets"},
			{Name: "activities", Literal: "Introduction to chain rule concepts, guided practice problems, group work on real-world applications, individual practice time."},
			{Name: "assessment", Literal: "Formative assessment through practice problems, exit ticket with 3 derivative problems using chain rule."},
		},
	},
	{
		TemplateID:   "template_2",
		TemplateName: "Student Progress Report",
		Triggers:     []string{"progress report", "student", "grade", "performance"},
		Fields: []FieldRule{
			{Name: "studentName", Candidates: []string{"john smith", "jane doe", "alex johnson"}, Default: "John Smith"},
			{Name: "studentId", Candidates: []string{"12345", "67890", "11111"}, Default: "12345"},
			{Name: "subject", Candidates: []string{"mathematics", "calculus", "algebra"}, Default: "Mathematics"},
			{Name: "period", Candidates: []string{"quarter 2", "quarter 1", "semester 1"}, Default: "Quarter 2"},
			{Name: "grade", Candidates: []string{"b+", "a-", "b", "a"}, Default: "B+"},
			{Name: "strengths", Literal: "Shows strong analytical and problem-solving skills, actively participates in class discussions."},
			{Name: "improvements", Literal: "Needs to show more detailed work steps in problem-solving, improve time management during tests."},
			{Name: "recommendations", Literal: "Continue practicing step-by-step problem solving, consider additional practice with timed exercises."},
		},
	},
	{
		TemplateID:   "template_3",
		TemplateName: "Meeting Minutes Template",
		Triggers:     []string{"meeting", "attendees", "agenda", "minutes"},
		Fields: []FieldRule{
			{Name: "meetingTitle", Candidates: []string{"mathematics department", "staff meeting", "curriculum review"}, Default: "Mathematics Department Meeting"},
			{Name: "date", CurrentDate: true},
			{Name: "time", Literal: "14:00"},
			{Name: "attendees", Candidates: []string{"dr. johnson", "mr. peterson", "ms. chen"}, Default: "Dr. Johnson, Mr. Peterson, Ms. Chen"},
			{Name: "agenda", Literal: "Review of new curriculum standards, implementation of weekly assessments, resource allocation discussion."},
			{Name: "discussions", Literal: "Detailed discussion on new state curriculum requirements and how to align our current teaching methods."},
			{Name: "decisions", Literal: "Implement weekly assessments starting next month, allocate budget for new graphing calculators."},
			{Name: "actionItems", Literal: "Dr. Johnson - prepare assessment schedule, Mr. Peterson - research calculator options, Ms. Chen - draft new lesson plan templates."},
		},
	},
}

// DefaultCategories returns the built-in category table.
func DefaultCategories() []Category {
	return defaultCategories
}
