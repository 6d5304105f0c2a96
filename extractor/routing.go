package extractor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/use-agent/routescrape/models"
)

// selector pairs a compiled matcher with its source text for error messages.
type selector struct {
	css   string
	match cascadia.Selector
}

func compile(css string) selector {
	return selector{css: css, match: cascadia.MustCompile(css)}
}

// Page structure of the routing view. These are an external contract with
// the scraped page and are not validated beyond matching.
var (
	routingSel   = compile("div#routing")
	tripNameSel  = compile("div#trip-name div.mobileTitle")
	pathSel      = compile("div#path")
	waypointsSel = compile("div.waypoints")
	waypointSel  = compile("div.waypoint")
	iconSel      = compile("div.sprite div")
	displaySel   = compile("div.mobileWaypoint div.display")
	addressSel   = compile("div.mobileWaypoint div.address")
	distanceSel  = compile("div.leg-span span.distance")
	durationSel  = compile("div.leg-span span.duration")
	mapsLinkSel  = compile("div#directions div.headlink a")
)

// ExtractHTML parses r as HTML and runs Extract on the resulting document.
func ExtractHTML(r io.Reader) (*models.TripRouting, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeParse, "failed to parse HTML", err)
	}
	return Extract(goquery.NewDocumentFromNode(root))
}

// Extract reads the trip routing record out of doc.
//
// Flow:
//  1. Locate the routing container.
//  2. Read the trip name.
//  3. Walk the waypoint list in document order.
//  4. Read the directions link from the document.
//
// Every single-element lookup takes the first match. The first lookup that
// matches nothing aborts the extraction; no partial record is returned.
func Extract(doc *goquery.Document) (*models.TripRouting, error) {
	routing, err := first(doc.Selection, routingSel, "")
	if err != nil {
		return nil, err
	}

	title, err := first(routing, tripNameSel, "")
	if err != nil {
		return nil, err
	}

	path, err := first(routing, pathSel, "")
	if err != nil {
		return nil, err
	}

	list, err := first(path, waypointsSel, "")
	if err != nil {
		return nil, err
	}

	items := list.FindMatcher(waypointSel.match)
	waypoints := make([]models.Waypoint, 0, items.Length())
	for i := range items.Length() {
		wp, err := extractWaypoint(items.Eq(i), i)
		if err != nil {
			return nil, err
		}
		waypoints = append(waypoints, wp)
	}

	link, err := first(doc.Selection, mapsLinkSel, "")
	if err != nil {
		return nil, err
	}
	href, ok := link.Attr("href")
	if !ok {
		return nil, models.AttributeMissing(mapsLinkSel.css, "href")
	}

	slog.Debug("routing extracted", "waypoints", len(waypoints))

	return &models.TripRouting{
		TripName:  title.Text(),
		Waypoints: waypoints,
		MapsLink:  href,
	}, nil
}

func extractWaypoint(item *goquery.Selection, index int) (models.Waypoint, error) {
	scope := fmt.Sprintf("waypoint %d", index)

	marker, err := first(item, iconSel, scope)
	if err != nil {
		return models.Waypoint{}, err
	}
	// A missing class reads as "", the same as DOM className.
	icon, _ := marker.Attr("class")

	var texts [4]string
	for i, sel := range []selector{displaySel, addressSel, distanceSel, durationSel} {
		s, err := first(item, sel, scope)
		if err != nil {
			return models.Waypoint{}, err
		}
		texts[i] = s.Text()
	}

	return models.Waypoint{
		Icon:     icon,
		Display:  texts[0],
		Address:  texts[1],
		Distance: texts[2],
		Duration: texts[3],
	}, nil
}

// first returns the first descendant of s matching sel.
func first(s *goquery.Selection, sel selector, scope string) (*goquery.Selection, error) {
	found := s.FindMatcher(sel.match).First()
	if found.Length() == 0 {
		err := models.ElementNotFound(sel.css)
		if scope != "" {
			err.Message = scope + ": " + err.Message
		}
		return nil, err
	}
	return found, nil
}
