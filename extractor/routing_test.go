package extractor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/use-agent/routescrape/models"
)

const waypointTmpl = `<div class="waypoint">
  <div class="sprite"><div class="%s"></div></div>
  <div class="mobileWaypoint"><div class="display">%s</div><div class="address">%s</div></div>
  <div class="leg-span"><span class="distance">%s</span><span class="duration">%s</span></div>
</div>`

func page(name string, waypoints []string, directions string) string {
	return `<html><body><div id="routing">` +
		`<div id="trip-name"><div class="mobileTitle">` + name + `</div></div>` +
		`<div id="path"><div class="waypoints">` + strings.Join(waypoints, "") + `</div></div>` +
		`</div>` + directions + `</body></html>`
}

func waypoint(icon, display, address, distance, duration string) string {
	return fmt.Sprintf(waypointTmpl, icon, display, address, distance, duration)
}

const directions = `<div id="directions"><div class="headlink"><a href="https://maps.example.com/abc">Maps</a></div></div>`

func loadFixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/downtown_loop.html")
	require.NoError(t, err)
	return string(b)
}

func TestExtractHTML_DowntownLoop(t *testing.T) {
	got, err := ExtractHTML(strings.NewReader(loadFixture(t)))
	require.NoError(t, err)

	want := &models.TripRouting{
		TripName: "Downtown Loop",
		Waypoints: []models.Waypoint{
			{Icon: "start", Display: "Home", Address: "1 Main St", Distance: "0 mi", Duration: "0 min"},
			{Icon: "end", Display: "Office", Address: "2 Market St", Distance: "3.2 mi", Duration: "12 min"},
		},
		MapsLink: "https://maps.example.com/abc",
	}
	assert.Equal(t, want, got)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"trip_name": "Downtown Loop",
		"waypoints": [
			{"icon":"start","display":"Home","address":"1 Main St","distance":"0 mi","duration":"0 min"},
			{"icon":"end","display":"Office","address":"2 Market St","distance":"3.2 mi","duration":"12 min"}
		],
		"maps_link": "https://maps.example.com/abc"
	}`, string(out))
}

func TestExtract_WaypointCountAndOrder(t *testing.T) {
	var items []string
	for i := range 7 {
		items = append(items, waypoint("icon-M", fmt.Sprintf("stop-%d", i), "addr", "1 km", "1 min"))
	}

	got, err := ExtractHTML(strings.NewReader(page("Seven", items, directions)))
	require.NoError(t, err)
	require.Len(t, got.Waypoints, 7)
	for i, wp := range got.Waypoints {
		assert.Equal(t, fmt.Sprintf("stop-%d", i), wp.Display)
	}
}

func TestExtract_RawTextIsNotTrimmed(t *testing.T) {
	items := []string{waypoint("icon-Y", "  Charger \n", " 5 Elm Rd", " 12.5 km ", "1 hr 5 min ")}
	got, err := ExtractHTML(strings.NewReader(page(" Spaced Trip ", items, directions)))
	require.NoError(t, err)

	assert.Equal(t, " Spaced Trip ", got.TripName)
	assert.Equal(t, "  Charger \n", got.Waypoints[0].Display)
	assert.Equal(t, " 12.5 km ", got.Waypoints[0].Distance)
	assert.Equal(t, "1 hr 5 min ", got.Waypoints[0].Duration)
}

func TestExtract_IconKeepsFullClassName(t *testing.T) {
	items := []string{waypoint("icon icon-M", "A", "B", "1 km", "1 min")}
	got, err := ExtractHTML(strings.NewReader(page("T", items, directions)))
	require.NoError(t, err)
	assert.Equal(t, "icon icon-M", got.Waypoints[0].Icon)
}

func TestExtract_IconWithoutClassIsEmpty(t *testing.T) {
	item := `<div class="waypoint"><div class="sprite"><div></div></div>` +
		`<div class="mobileWaypoint"><div class="display">A</div><div class="address">B</div></div>` +
		`<div class="leg-span"><span class="distance">1 km</span><span class="duration">1 min</span></div></div>`
	got, err := ExtractHTML(strings.NewReader(page("T", []string{item}, directions)))
	require.NoError(t, err)
	assert.Equal(t, "", got.Waypoints[0].Icon)
}

func TestExtract_EmptyWaypointList(t *testing.T) {
	got, err := ExtractHTML(strings.NewReader(page("Empty", nil, directions)))
	require.NoError(t, err)
	assert.NotNil(t, got.Waypoints)
	assert.Empty(t, got.Waypoints)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"waypoints":[]`)
}

func TestExtract_FirstMatchWins(t *testing.T) {
	html := `<html><body>` +
		`<div id="routing"><div id="trip-name"><div class="mobileTitle">First</div><div class="mobileTitle">Second</div></div>` +
		`<div id="path"><div class="waypoints"></div></div></div>` +
		`<div id="routing"><div id="trip-name"><div class="mobileTitle">Other</div></div></div>` +
		`<div id="directions"><div class="headlink"><a href="/one">1</a><a href="/two">2</a></div></div>` +
		`</body></html>`

	got, err := ExtractHTML(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, "First", got.TripName)
	assert.Equal(t, "/one", got.MapsLink)
}

func TestExtract_Errors(t *testing.T) {
	good := waypoint("start", "Home", "1 Main St", "0 mi", "0 min")
	noDistance := `<div class="waypoint"><div class="sprite"><div class="x"></div></div>` +
		`<div class="mobileWaypoint"><div class="display">A</div><div class="address">B</div></div>` +
		`<div class="leg-span"><span class="duration">1 min</span></div></div>`

	tests := []struct {
		name     string
		html     string
		sentinel error
		code     string
		selector string
	}{
		{
			name:     "missing routing container",
			html:     `<html><body><div id="elsewhere"></div>` + directions + `</body></html>`,
			sentinel: models.ErrElementNotFound,
			code:     models.ErrCodeElementNotFound,
			selector: "div#routing",
		},
		{
			name:     "missing trip name",
			html:     `<html><body><div id="routing"><div id="path"><div class="waypoints"></div></div></div>` + directions + `</body></html>`,
			sentinel: models.ErrElementNotFound,
			code:     models.ErrCodeElementNotFound,
			selector: "div#trip-name div.mobileTitle",
		},
		{
			name:     "missing waypoint list",
			html:     `<html><body><div id="routing"><div id="trip-name"><div class="mobileTitle">T</div></div><div id="path"></div></div>` + directions + `</body></html>`,
			sentinel: models.ErrElementNotFound,
			code:     models.ErrCodeElementNotFound,
			selector: "div.waypoints",
		},
		{
			name:     "waypoint missing distance",
			html:     page("T", []string{good, noDistance}, directions),
			sentinel: models.ErrElementNotFound,
			code:     models.ErrCodeElementNotFound,
			selector: "div.leg-span span.distance",
		},
		{
			name:     "missing directions",
			html:     page("T", []string{good}, ""),
			sentinel: models.ErrElementNotFound,
			code:     models.ErrCodeElementNotFound,
			selector: "div#directions div.headlink a",
		},
		{
			name:     "link without href",
			html:     page("T", []string{good}, `<div id="directions"><div class="headlink"><a>Maps</a></div></div>`),
			sentinel: models.ErrAttributeMissing,
			code:     models.ErrCodeAttributeMissing,
			selector: "div#directions div.headlink a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractHTML(strings.NewReader(tt.html))
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.sentinel), "want %v, got %v", tt.sentinel, err)

			var se *models.ScrapeError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.code, se.Code)
			assert.Contains(t, se.Message, tt.selector)
		})
	}
}

func TestExtract_WaypointErrorNamesIndex(t *testing.T) {
	good := waypoint("start", "Home", "1 Main St", "0 mi", "0 min")
	bad := `<div class="waypoint"><div class="sprite"><div class="x"></div></div></div>`

	_, err := ExtractHTML(strings.NewReader(page("T", []string{good, bad}, directions)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "waypoint 1")
}

func TestExtract_Idempotent(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(loadFixture(t)))
	require.NoError(t, err)

	a, err := Extract(doc)
	require.NoError(t, err)
	b, err := Extract(doc)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
}

func TestExtract_JSONRoundTrip(t *testing.T) {
	rec, err := ExtractHTML(strings.NewReader(loadFixture(t)))
	require.NoError(t, err)

	out, err := json.Marshal(rec)
	require.NoError(t, err)

	var back models.TripRouting
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, *rec, back)
}
