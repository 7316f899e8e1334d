package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSource(t *testing.T) {
	assert.Equal(t, SourceHeadHunter, NormalizeSource("hh"))
	assert.Equal(t, SourceHeadHunter, NormalizeSource(" HH.ru "))
	assert.Equal(t, SourceSuperJob, NormalizeSource("SJ"))
	assert.Equal(t, SourceSuperJob, NormalizeSource("superjob"))
	assert.Equal(t, "", NormalizeSource("linkedin"))

	assert.True(t, IsValidSource("headhunter"))
	assert.False(t, IsValidSource(""))
}

func TestFormatSalary(t *testing.T) {
	avg := 184500
	assert.Equal(t, "184,500", FormatSalary(&avg))

	small := 900
	assert.Equal(t, "900", FormatSalary(&small))

	assert.Equal(t, "", FormatSalary(nil))
}

func TestParseLanguages(t *testing.T) {
	assert.Equal(t, []string{"Go", "C#", "C++"}, ParseLanguages("Go, C#,,C++ "))
	assert.Nil(t, ParseLanguages(""))
}
