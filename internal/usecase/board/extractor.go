// Package board infers Manhattan Community Board numbers from free-text
// meeting titles. Titles are human-authored YouTube video titles with no
// guaranteed structure, so extraction is a layered heuristic: explicit
// numeric citations win over bare numbers, which win over neighborhood
// name lookup. Absence of a match is a normal outcome, not an error.
package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/boardwatchnyc/boardwatch/internal/domain/entities"
)

// Unknown is the display sentinel for titles no heuristic matched.
const Unknown = "unknown"

// Explicit citation patterns, tried in order; first in-range capture wins.
var citationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)CB\s*(\d+)`),
	regexp.MustCompile(`(?i)Community Board\s*(\d+)`),
	regexp.MustCompile(`(?i)Community Board\s*#(\d+)`),
	regexp.MustCompile(`(?i)MCB\s*(\d+)`),
	regexp.MustCompile(`(?i)Board\s*(\d+)`),
	regexp.MustCompile(`(?i)District\s*(\d+)`),
}

var bareNumberPattern = regexp.MustCompile(`\b(\d{1,2})\b`)

// Neighborhood lookup is ordered: more specific names precede the names
// they contain ("east harlem" before "harlem").
var neighborhoods = []struct {
	name  string
	board int
}{
	{"battery park city", 1},
	{"financial district", 1},
	{"tribeca", 1},
	{"greenwich village", 2},
	{"west village", 2},
	{"soho", 2},
	{"noho", 2},
	{"little italy", 2},
	{"lower east side", 3},
	{"east village", 3},
	{"chinatown", 3},
	{"hell's kitchen", 4},
	{"chelsea", 4},
	{"clinton", 4},
	{"midtown", 5},
	{"murray hill", 6},
	{"gramercy", 6},
	{"kips bay", 6},
	{"turtle bay", 6},
	{"stuyvesant town", 6},
	{"upper west side", 7},
	{"lincoln square", 7},
	{"upper east side", 8},
	{"yorkville", 8},
	{"lenox hill", 8},
	{"roosevelt island", 8},
	{"morningside heights", 9},
	{"manhattanville", 9},
	{"hamilton heights", 9},
	{"east harlem", 11},
	{"el barrio", 11},
	{"central harlem", 10},
	{"harlem", 9},
	{"washington heights", 12},
	{"inwood", 12},
}

// ExtractNumber infers a board number from a meeting title. The boolean is
// false when no heuristic matched; callers treat that as the displayable
// "unknown" state. Out-of-range captures fall through to later stages.
func ExtractNumber(title string) (int, bool) {
	for _, re := range citationPatterns {
		m := re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err == nil && entities.ValidBoardNumber(n) {
			return n, true
		}
	}

	lower := strings.ToLower(title)

	if strings.Contains(lower, "board") {
		for _, m := range bareNumberPattern.FindAllStringSubmatch(title, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && entities.ValidBoardNumber(n) {
				return n, true
			}
		}
	}

	for _, nb := range neighborhoods {
		if strings.Contains(lower, nb.name) {
			return nb.board, true
		}
	}

	return 0, false
}

// Label formats the extraction result for display: "CB7" or "unknown".
func Label(title string) string {
	n, ok := ExtractNumber(title)
	if !ok {
		return Unknown
	}
	return LabelForNumber(n)
}

// LabelForNumber formats a known board number for display.
func LabelForNumber(n int) string {
	if !entities.ValidBoardNumber(n) {
		return Unknown
	}
	return fmt.Sprintf("CB%d", n)
}

// Meeting keyword filter from the channel fetcher: board channels also
// publish highlights and interviews that should not be listed as meetings.
var (
	meetingKeywords = []string{
		"meeting", "committee", "board", "session", "hearing",
		"full board", "land use", "parks", "transportation",
		"business", "housing", "budget", "public",
	}
	excludeKeywords = []string{"highlights", "summary", "clip", "excerpt", "interview"}
)

// LooksLikeMeeting reports whether a video title suggests an actual
// board or committee meeting.
func LooksLikeMeeting(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range excludeKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, kw := range meetingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
