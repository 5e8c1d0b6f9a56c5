package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleFilesLoad(t *testing.T) {
	t.Setenv(DatabaseURLEnv, "")

	cfg, err := LoadFromPath("../../examples/timetable_config.example.yaml")
	require.NoError(t, err)

	assert.Equal(t, 18, cfg.WeeksPerSemester)
	assert.Equal(t, []BlackoutDay{{Week: 5, Day: 0}, {Week: 10, Day: 3}}, cfg.BlackoutDays)
	assert.Equal(t, SourceFile, cfg.Curriculum.Source)

	curriculum, err := LoadCurriculumFromPath(cfg.CurriculumPath())
	require.NoError(t, err)
	assert.Len(t, curriculum.Specialties, 1)
	assert.Len(t, curriculum.Teachers, 3)
	assert.Len(t, curriculum.Groups, 2)
}
