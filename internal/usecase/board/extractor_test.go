package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNumber_Precedence(t *testing.T) {
	tests := []struct {
		title string
		want  int
		found bool
	}{
		{"CB7 Full Board Meeting", 7, true},
		{"CB 12 Land Use Committee", 12, true},
		{"Manhattan Community Board #3 Housing Forum", 3, true},
		{"Community Board 5 Budget Hearing", 5, true},
		{"MCB9 Parks Committee", 9, true},
		{"Board 11 Public Session", 11, true},
		{"District 4 Transportation Meeting", 4, true},
		{"Upper West Side District Meeting", 7, true},
		{"Harlem Community Meeting", 9, true},
		{"East Harlem Town Hall", 11, true},
		{"Central Harlem Board Meeting", 10, true},
		{"Washington Heights Budget Forum", 12, true},
		{"Town Hall on Climate", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			got, ok := ExtractNumber(tc.title)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractNumber_BareNumberRequiresBoardWord(t *testing.T) {
	got, ok := ExtractNumber("Full Board Meeting 7 - January")
	assert.True(t, ok)
	assert.Equal(t, 7, got)

	// Same bare number without "board" anywhere must not match.
	_, ok = ExtractNumber("Town Hall 7 - January")
	assert.False(t, ok)
}

func TestExtractNumber_OutOfRangeFallsThrough(t *testing.T) {
	// CB15 is not a valid Manhattan board; the neighborhood stage should
	// still get a chance.
	got, ok := ExtractNumber("CB15 recap from the Upper East Side")
	assert.True(t, ok)
	assert.Equal(t, 8, got)

	_, ok = ExtractNumber("CB15 Full Board Meeting")
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "CB7", Label("CB7 Full Board Meeting"))
	assert.Equal(t, Unknown, Label("Town Hall on Climate"))
}

func TestLooksLikeMeeting(t *testing.T) {
	assert.True(t, LooksLikeMeeting("CB7 Full Board Meeting - March 2025"))
	assert.True(t, LooksLikeMeeting("Transportation Committee Session"))
	assert.False(t, LooksLikeMeeting("Meeting Highlights: Spring Budget"))
	assert.False(t, LooksLikeMeeting("Chairperson Interview"))
	assert.False(t, LooksLikeMeeting("Street Fair 2025"))
}
