package calendarlink

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communion.invite/models"
)

func TestBuild_CommunionEventRoundTrip(t *testing.T) {
	ev := models.CommunionEvent()

	link := Build(ev)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "calendar.google.com", u.Host)
	assert.Equal(t, "/calendar/render", u.Path)

	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "First Holy Communion Celebration: Anaia Mary Joy", q.Get("text"))
	assert.Equal(t, "20251227T160000/20251227T183000", q.Get("dates"))
	assert.Equal(t, "St. Joseph's Metropolitan Cathedral, Palayam, Thiruvananthapuram", q.Get("location"))
	assert.Equal(t, "Join us for the First Holy Communion Celebration of Anaia Mary Joy.", q.Get("details"))
	assert.Len(t, q, 5)
}

func TestBuild_ParameterOrder(t *testing.T) {
	link := Build(models.CommunionEvent())

	_, rawQuery, found := strings.Cut(link, "?")
	require.True(t, found)

	var keys []string
	for _, pair := range strings.Split(rawQuery, "&") {
		key, _, _ := strings.Cut(pair, "=")
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"action", "text", "dates", "details", "location"}, keys)
}

func TestBuild_Deterministic(t *testing.T) {
	ev := models.CommunionEvent()
	assert.Equal(t, Build(ev), Build(ev))
}

func TestBuild_ReservedCharactersAreEscaped(t *testing.T) {
	ev := models.EventInfo{
		Title:       "Mass & Brunch=yes #1",
		Start:       time.Date(2025, time.December, 27, 16, 0, 0, 0, time.UTC),
		End:         time.Date(2025, time.December, 27, 18, 30, 0, 0, time.UTC),
		Location:    "Hall A\tRoom 2&action=EVIL",
		Description: "bring a+b, \"quotes\" and\nnew lines?",
	}

	link := Build(ev)

	_, rawQuery, _ := strings.Cut(link, "?")
	assert.NotContains(t, rawQuery, " ")
	assert.NotContains(t, rawQuery, "#")
	assert.NotContains(t, rawQuery, "\n")
	assert.NotContains(t, rawQuery, "\t")
	assert.Contains(t, rawQuery, "%26")
	assert.Contains(t, rawQuery, "%3D")
	assert.Contains(t, rawQuery, "%23")
	assert.Contains(t, rawQuery, "%20")
	assert.Contains(t, rawQuery, "%2B")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Empty(t, u.Fragment)

	q := u.Query()
	assert.Len(t, q, 5)
	assert.Equal(t, []string{"TEMPLATE"}, q["action"])
	assert.Equal(t, ev.Title, q.Get("text"))
	assert.Equal(t, ev.Location, q.Get("location"))
	assert.Equal(t, ev.Description, q.Get("details"))
}

func TestBuild_ZeroValueDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		link := Build(models.EventInfo{})
		assert.True(t, strings.HasPrefix(link, GoogleRenderURL+"?action=TEMPLATE&text="))
	})
}

func TestFormatRange(t *testing.T) {
	start := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	assert.Equal(t, "20250102T030405/20250102T043405", FormatRange(start, end))
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"two words", "two%20words"},
		{"a&b=c", "a%26b%3Dc"},
		{"1+1", "1%2B1"},
		{"#tag", "%23tag"},
		{"St. Joseph's", "St.%20Joseph%27s"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}
