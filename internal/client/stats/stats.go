// Package stats derives lookup results from published draw history:
// which two-digit endings recur, whether a number ever won, and the
// most recent draw.
package stats

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/lotterich/cli/internal/client/models"
)

// ErrInvalidQuery signals a lookup string outside the accepted shape.
var ErrInvalidQuery = errors.New("enter 2 to 6 digits")

// EndingCount is one entry of the recurring-endings ranking.
type EndingCount struct {
	Digits   string
	Count    int
	LastSeen time.Time
}

// TopEndingDigits ranks the two-digit endings of the draw history by
// how often they were drawn, breaking ties by the most recent draw
// date, and returns the top n. Draws with a malformed ending are
// skipped.
func TopEndingDigits(draws []models.Draw, n int) []EndingCount {
	byDigits := map[string]*EndingCount{}
	for _, d := range draws {
		if !models.IsDigits(d.Last2, 2) {
			continue
		}
		e, ok := byDigits[d.Last2]
		if !ok {
			e = &EndingCount{Digits: d.Last2}
			byDigits[d.Last2] = e
		}
		e.Count++
		if dt := d.DrawDate(); dt.After(e.LastSeen) {
			e.LastSeen = dt
		}
	}
	out := make([]EndingCount, 0, len(byDigits))
	for _, e := range byDigits {
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].LastSeen.After(out[j].LastSeen)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Match is one historical hit of a queried number.
type Match struct {
	Tier  models.PrizeType
	Date  string
	Value string
}

// MatchResult is the outcome of a number lookup over the draw history.
type MatchResult struct {
	Query   string
	Total   int
	Matches []Match
}

// FindMatches checks a number against every published draw. The query
// must be 2 to 6 digits. Which tiers are tested depends on how many
// digits were given: the full first prize and its near misses need all
// six, the front and back three-digit prizes need at least three, and
// the two-digit ending needs at least two. Duplicate hits are folded
// and the result is ordered newest draw first.
func FindMatches(query string, draws []models.Draw) (MatchResult, error) {
	if len(query) < 2 || len(query) > 6 || !models.IsDigits(query, len(query)) {
		return MatchResult{}, ErrInvalidQuery
	}

	var matches []Match
	seen := map[Match]bool{}
	add := func(tier models.PrizeType, date, value string) {
		m := Match{Tier: tier, Date: date, Value: value}
		if !seen[m] {
			seen[m] = true
			matches = append(matches, m)
		}
	}

	for _, d := range draws {
		if len(query) == 6 {
			if d.Prize1 == query {
				add(models.PrizeTypeFirst, d.Date, d.Prize1)
			} else if nearFirst(query, d.Prize1) {
				add(models.PrizeTypeNearFirst, d.Date, d.Prize1)
			}
		}
		if len(query) >= 3 {
			front := query[:3]
			if d.First3One == front {
				add(models.PrizeTypeFront3, d.Date, d.First3One)
			}
			if d.First3Two == front {
				add(models.PrizeTypeFront3, d.Date, d.First3Two)
			}
			back := query[len(query)-3:]
			if d.Last3One == back {
				add(models.PrizeTypeBack3, d.Date, d.Last3One)
			}
			if d.Last3Two == back {
				add(models.PrizeTypeBack3, d.Date, d.Last3Two)
			}
		}
		if tail := query[len(query)-2:]; d.Last2 == tail {
			add(models.PrizeTypeBack2, d.Date, d.Last2)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date > matches[j].Date
	})
	return MatchResult{Query: query, Total: len(matches), Matches: matches}, nil
}

// nearFirst reports whether a six-digit number sits exactly one above
// or below the first prize.
func nearFirst(query, prize1 string) bool {
	if !models.IsDigits(prize1, 6) {
		return false
	}
	q, err := strconv.Atoi(query)
	if err != nil {
		return false
	}
	p, err := strconv.Atoi(prize1)
	if err != nil {
		return false
	}
	diff := q - p
	return diff == 1 || diff == -1
}

// LatestDraw picks the most recent draw by date, or false when the
// history is empty.
func LatestDraw(draws []models.Draw) (models.Draw, bool) {
	var latest models.Draw
	found := false
	for _, d := range draws {
		if !found || d.DrawDate().After(latest.DrawDate()) {
			latest = d
			found = true
		}
	}
	return latest, found
}
