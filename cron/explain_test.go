//go:build unit

package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainExpression_Phrasing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "every minute",
			expr: "* * * * *",
			want: "Every minute.",
		},
		{
			name: "every five minutes",
			expr: "*/5 * * * *",
			want: "Every 5 minutes.",
		},
		{
			name: "every three minutes",
			expr: "*/3 * * * *",
			want: "Every 3 minutes.",
		},
		{
			name: "minute window on friday",
			expr: "15-30 10-12 * * 5",
			want: "Every minute between 10:15 and 12:30 on Friday.",
		},
		{
			name: "first of each month",
			expr: "0 8 1 * *",
			want: "At 08:00 on the 1st of each month.",
		},
		{
			name: "stepped business hours",
			expr: "*/15 9-17 * 1-3 1-5",
			want: "Every 15 minutes from 09:00 to 17:59 on weekdays during January to March.",
		},
		{
			name: "daily at eight",
			expr: "0 8 * * *",
			want: "Every day at 08:00.",
		},
		{
			name: "twice a day on odd weekdays",
			expr: "0 9,17 * * 1,3,5",
			want: "At 09:00 and 17:00 on Monday, Wednesday and Friday.",
		},
		{
			name: "first and fifteenth",
			expr: "0 8 1,15 * *",
			want: "At 08:00 on the 1st and 15th of each month.",
		},
		{
			name: "summer months",
			expr: "0 8 * 6-8 *",
			want: "At 08:00 during June to August.",
		},
		{
			name: "every eight hours",
			expr: "0 */8 * * *",
			want: "Every 8 hours.",
		},
		{
			name: "fixed minute every hour",
			expr: "30 * * * *",
			want: "At 30 every hour.",
		},
		{
			name: "minute list every hour",
			expr: "5,20,50 * * * *",
			want: "At 5, 20 and 50 minute every hour.",
		},
		{
			name: "weekday afternoon",
			expr: "30 14 * * 1-5",
			want: "At 14:30 on weekdays.",
		},
		{
			name: "weekend mornings",
			expr: "0 8 * * 0,6",
			want: "At 08:00 on weekends.",
		},
		{
			name: "contiguous weekday range",
			expr: "0 8 * * 1-3",
			want: "At 08:00 on Monday to Wednesday.",
		},
		{
			name: "contiguous day-of-month range",
			expr: "0 8 1-5 * *",
			want: "At 08:00 from the 1st to the 5th.",
		},
		{
			name: "single month",
			expr: "0 8 * 12 *",
			want: "At 08:00 in December.",
		},
		{
			name: "month list",
			expr: "0 8 * 2,4,6 *",
			want: "At 08:00 in February, April and June.",
		},
		{
			name: "everything restricted",
			expr: "0 0 1 1 0",
			want: "At 00:00 on Sunday on the 1st in January.",
		},
		{
			name: "stepped minutes in discrete windows",
			expr: "*/20 9,17 * * *",
			want: "Every 20 minutes in 09:00-09:59 and 17:00-17:59.",
		},
		{
			name: "enumeration fallback",
			expr: "30 9,17 * * *",
			want: "At minute 30 past hour 9 and 17.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExplainExpression(tc.expr)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExplainExpression_PropagatesParseError(t *testing.T) {
	t.Parallel()

	_, err := ExplainExpression("60 * * * *")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldRange)
}

func TestExplain_Deterministic(t *testing.T) {
	t.Parallel()

	sched, err := Parse("*/15 9-17 * 1-3 1-5")
	require.NoError(t, err)

	assert.Equal(t, Explain(sched), Explain(sched))
}

func TestExplain_NeverEmptyForValidSchedules(t *testing.T) {
	t.Parallel()

	// Inputs the concise phrasing rules do not cover still produce a
	// complete sentence via the enumeration fallback.
	exprs := []string{
		"1,5,12 3,7 * * *",
		"30 1,4,9,16 * * *",
		"*/7 0,5,10,15,20 * * *",
		"0 1,2,4,8,16 * * *",
	}

	for _, expr := range exprs {
		got, err := ExplainExpression(expr)

		require.NoError(t, err, expr)
		assert.NotEqual(t, ".", got, expr)
		assert.True(t, len(got) > 1, expr)
	}
}

func TestExplain_Ordinals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{20, "20th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{24, "24th"},
		{30, "30th"},
		{31, "31st"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ordinal(tc.n))
	}
}

func TestExplain_JoinNatural(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", joinNatural(nil))
	assert.Equal(t, "one", joinNatural([]string{"one"}))
	assert.Equal(t, "one and two", joinNatural([]string{"one", "two"}))
	assert.Equal(t, "one, two and three", joinNatural([]string{"one", "two", "three"}))
}
