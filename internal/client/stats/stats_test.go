package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotterich/cli/internal/client/models"
)

func draw(date, prize1, f1, f2, l1, l2, last2 string) models.Draw {
	return models.Draw{
		Date:      date,
		Prize1:    prize1,
		First3One: f1,
		First3Two: f2,
		Last3One:  l1,
		Last3Two:  l2,
		Last2:     last2,
	}
}

func history() []models.Draw {
	return []models.Draw{
		draw("2025-01-16", "654321", "123", "456", "321", "789", "12"),
		draw("2025-02-01", "111111", "222", "333", "444", "555", "34"),
		draw("2025-02-16", "999999", "888", "777", "666", "000", "12"),
		draw("2025-03-01", "123456", "135", "246", "456", "654", "34"),
	}
}

func TestTopEndingDigits_RanksByCount(t *testing.T) {
	top := TopEndingDigits(history(), 5)
	require.Len(t, top, 2)
	assert.Equal(t, "34", top[0].Digits)
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, "12", top[1].Digits)
}

func TestTopEndingDigits_TieBrokenByRecency(t *testing.T) {
	draws := []models.Draw{
		draw("2025-01-01", "000001", "111", "222", "333", "444", "12"),
		draw("2025-02-01", "000002", "111", "222", "333", "444", "34"),
	}
	top := TopEndingDigits(draws, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "34", top[0].Digits)
	assert.Equal(t, "12", top[1].Digits)
}

func TestTopEndingDigits_TruncatesAndSkipsMalformed(t *testing.T) {
	draws := []models.Draw{
		draw("2025-01-01", "000001", "111", "222", "333", "444", "1x"),
		draw("2025-02-01", "000002", "111", "222", "333", "444", "34"),
		draw("2025-03-01", "000003", "111", "222", "333", "444", "56"),
	}
	top := TopEndingDigits(draws, 1)
	require.Len(t, top, 1)
	assert.Equal(t, 1, top[0].Count)
}

func TestFindMatches_RejectsBadQueries(t *testing.T) {
	for _, q := range []string{"", "1", "1234567", "12a456", "๑๒๓๔๕๖"} {
		_, err := FindMatches(q, history())
		assert.ErrorIs(t, err, ErrInvalidQuery, "query %q", q)
	}
}

func TestFindMatches_ExactFirstPrize(t *testing.T) {
	res, err := FindMatches("654321", history())
	require.NoError(t, err)

	var tiers []models.PrizeType
	for _, m := range res.Matches {
		tiers = append(tiers, m.Tier)
	}
	assert.Contains(t, tiers, models.PrizeTypeFirst)
	assert.NotContains(t, tiers, models.PrizeTypeNearFirst)
}

func TestFindMatches_NearFirstPrize(t *testing.T) {
	res, err := FindMatches("654320", history())
	require.NoError(t, err)

	require.NotEmpty(t, res.Matches)
	found := false
	for _, m := range res.Matches {
		if m.Tier == models.PrizeTypeNearFirst {
			found = true
			assert.Equal(t, "654321", m.Value)
		}
	}
	assert.True(t, found)
}

func TestFindMatches_ShortQueryTiers(t *testing.T) {
	res, err := FindMatches("12", history())
	require.NoError(t, err)
	require.Equal(t, 2, res.Total)
	for _, m := range res.Matches {
		assert.Equal(t, models.PrizeTypeBack2, m.Tier)
	}
	assert.Equal(t, "2025-02-16", res.Matches[0].Date)
	assert.Equal(t, "2025-01-16", res.Matches[1].Date)
}

func TestFindMatches_FrontAndBackThree(t *testing.T) {
	res, err := FindMatches("123456", history())
	require.NoError(t, err)

	byTier := map[models.PrizeType][]Match{}
	for _, m := range res.Matches {
		byTier[m.Tier] = append(byTier[m.Tier], m)
	}
	require.Len(t, byTier[models.PrizeTypeFirst], 1)
	assert.Equal(t, "2025-03-01", byTier[models.PrizeTypeFirst][0].Date)
	require.Len(t, byTier[models.PrizeTypeFront3], 1)
	assert.Equal(t, "123", byTier[models.PrizeTypeFront3][0].Value)
	require.Len(t, byTier[models.PrizeTypeBack3], 1)
	assert.Equal(t, "456", byTier[models.PrizeTypeBack3][0].Value)
}

func TestFindMatches_UsesTrailingWindowForMidLengths(t *testing.T) {
	draws := []models.Draw{
		draw("2025-01-16", "000000", "999", "998", "345", "997", "45"),
	}
	res, err := FindMatches("2345", draws)
	require.NoError(t, err)

	var tiers []models.PrizeType
	for _, m := range res.Matches {
		tiers = append(tiers, m.Tier)
	}
	assert.Contains(t, tiers, models.PrizeTypeBack3)
	assert.Contains(t, tiers, models.PrizeTypeBack2)
	assert.NotContains(t, tiers, models.PrizeTypeFront3)
}

func TestFindMatches_DedupesRepeatedValues(t *testing.T) {
	draws := []models.Draw{
		draw("2025-01-16", "000000", "999", "998", "456", "456", "56"),
	}
	res, err := FindMatches("123456", draws)
	require.NoError(t, err)

	count := 0
	for _, m := range res.Matches {
		if m.Tier == models.PrizeTypeBack3 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestLatestDraw(t *testing.T) {
	d, ok := LatestDraw(history())
	require.True(t, ok)
	assert.Equal(t, "2025-03-01", d.Date)

	_, ok = LatestDraw(nil)
	assert.False(t, ok)
}
