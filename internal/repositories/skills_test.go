package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSkills(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"python", "react"}, SplitSkills("Python, React"))
	assert.Equal(t, []string{"go", "postgres", "docker"}, SplitSkills("go,postgres,docker"))
	assert.Equal(t, []string{"python"}, SplitSkills("  Python  "))
	assert.Empty(t, SplitSkills(""))
	assert.Empty(t, SplitSkills(" , , "))
	assert.Equal(t, []string{"react", "mongodb", "node.js"}, SplitSkills("React, MongoDB, Node.js,"))
}

func TestJobPatchFields(t *testing.T) {
	t.Parallel()

	assert.Empty(t, JobPatch{}.fields())

	title := "Senior Go Engineer"
	min := 50000.0
	fields := JobPatch{Title: &title, SalaryMin: &min}.fields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "Senior Go Engineer", fields["title"])
	assert.Equal(t, 50000.0, fields["salary_min"])
	assert.NotContains(t, fields, "status")
	assert.NotContains(t, fields, "location")
}
