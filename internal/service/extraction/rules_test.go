package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The category table is load-bearing data: downstream conversions depend on
// the exact trigger sets, candidate orders, and defaults. These tests pin the
// table so an accidental reorder shows up as a failure, not a silent
// behavior change.

func TestDefaultCategories_Order(t *testing.T) {
	categories := DefaultCategories()

	require.Len(t, categories, 3)
	assert.Equal(t, "template_1", categories[0].TemplateID)
	assert.Equal(t, "template_2", categories[1].TemplateID)
	assert.Equal(t, "template_3", categories[2].TemplateID)
}

func TestDefaultCategories_Triggers(t *testing.T) {
	categories := DefaultCategories()

	assert.Equal(t, []string{"lesson plan", "calculus", "derivatives", "teaching", "objectives"}, categories[0].Triggers)
	assert.Equal(t, []string{"progress report", "student", "grade", "performance"}, categories[1].Triggers)
	assert.Equal(t, []string{"meeting", "attendees", "agenda", "minutes"}, categories[2].Triggers)
}

func TestDefaultCategories_GradeCandidateOrder(t *testing.T) {
	categories := DefaultCategories()

	var gradeRule *FieldRule
	for i, rule := range categories[1].Fields {
		if rule.Name == "grade" {
			gradeRule = &categories[1].Fields[i]
			break
		}
	}
	require.NotNil(t, gradeRule)

	// The b+/a-/b/a order is a known misfire on bare letters, kept verbatim.
	assert.Equal(t, []string{"b+", "a-", "b", "a"}, gradeRule.Candidates)
	assert.Equal(t, "B+", gradeRule.Default)
}

func TestDefaultCategories_ExactlyOneDateRule(t *testing.T) {
	var dateRules int
	for _, category := range DefaultCategories() {
		for _, rule := range category.Fields {
			if rule.CurrentDate {
				dateRules++
				assert.Equal(t, "date", rule.Name)
				assert.Empty(t, rule.Candidates)
			}
		}
	}
	assert.Equal(t, 1, dateRules)
}

func TestDefaultCategories_RuleShape(t *testing.T) {
	for _, category := range DefaultCategories() {
		assert.NotEmpty(t, category.Triggers, "category %s", category.TemplateID)
		for _, rule := range category.Fields {
			if rule.CurrentDate {
				continue
			}
			if len(rule.Candidates) > 0 {
				assert.NotEmpty(t, rule.Default, "keyword rule %s.%s needs a default", category.TemplateID, rule.Name)
			} else {
				assert.NotEmpty(t, rule.Literal, "rule %s.%s must be keyword or literal", category.TemplateID, rule.Name)
			}
		}
	}
}
