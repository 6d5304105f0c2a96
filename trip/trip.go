package trip

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/use-agent/routescrape/models"
)

// ErrInvalidMetric is returned when a distance or duration label cannot be
// read as a number with a known unit.
var ErrInvalidMetric = errors.New("invalid metric")

// Waypoint kinds derived from the marker icon class.
const (
	KindMarker  = "marker"
	KindCharger = "charger"
	KindUnknown = "unknown"
)

var kindByIcon = map[string]string{
	"icon-M": KindMarker,
	"icon-Y": KindCharger,
}

// minutes per duration unit as printed by the routing page.
var unitMinutes = map[string]int{
	"day": 1440, "days": 1440,
	"h": 60, "hr": 60, "hrs": 60, "hour": 60, "hours": 60,
	"m": 1, "min": 1, "mins": 1, "minute": 1, "minutes": 1,
}

// Waypoint is a typed view of an extracted waypoint.
type Waypoint struct {
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Address     string  `json:"address"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
}

// Leg is one extracted routing page: a named run of waypoints.
type Leg struct {
	Name      string     `json:"name"`
	MapsLink  string     `json:"maps_link"`
	Waypoints []Waypoint `json:"waypoints"`
}

// Trip is an ordered list of legs.
type Trip struct {
	Name string `json:"name"`
	Legs []Leg  `json:"legs"`
}

// ParseWaypoint converts raw page text into a typed Waypoint.
func ParseWaypoint(wp models.Waypoint) (Waypoint, error) {
	dist, err := ParseDistance(wp.Distance)
	if err != nil {
		return Waypoint{}, err
	}
	dur, err := ParseDuration(wp.Duration)
	if err != nil {
		return Waypoint{}, err
	}

	kind, ok := kindByIcon[strings.TrimSpace(wp.Icon)]
	if !ok {
		kind = KindUnknown
	}

	return Waypoint{
		Name:        strings.TrimSpace(wp.Display),
		Kind:        kind,
		Address:     strings.TrimSpace(wp.Address),
		DistanceKm:  dist,
		DurationMin: dur,
	}, nil
}

// ParseDistance reads the leading number of a label such as "12.5 km".
func ParseDistance(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty distance", ErrInvalidMetric)
	}
	d, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: distance %q", ErrInvalidMetric, s)
	}
	return d, nil
}

// ParseDuration sums "<n> <unit>" pairs, e.g. "1 day 2 hr 5 min", into minutes.
func ParseDuration(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields)%2 != 0 {
		return 0, fmt.Errorf("%w: duration %q", ErrInvalidMetric, s)
	}

	total := 0
	for i := 0; i < len(fields); i += 2 {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return 0, fmt.Errorf("%w: duration %q", ErrInvalidMetric, s)
		}
		mult, ok := unitMinutes[strings.ToLower(fields[i+1])]
		if !ok {
			return 0, fmt.Errorf("%w: duration unit %q", ErrInvalidMetric, fields[i+1])
		}
		total += n * mult
	}
	return total, nil
}

// NewLeg builds a Leg from an extracted routing record.
func NewLeg(rec *models.TripRouting) (Leg, error) {
	leg := Leg{
		Name:      rec.TripName,
		MapsLink:  rec.MapsLink,
		Waypoints: make([]Waypoint, 0, len(rec.Waypoints)),
	}
	for i, raw := range rec.Waypoints {
		wp, err := ParseWaypoint(raw)
		if err != nil {
			return Leg{}, fmt.Errorf("waypoint %d: %w", i, err)
		}
		leg.Waypoints = append(leg.Waypoints, wp)
	}
	return leg, nil
}

// travelled returns every waypoint but the last; the destination's leg
// metrics point past the end of this leg.
func (l Leg) travelled() []Waypoint {
	if len(l.Waypoints) == 0 {
		return nil
	}
	return l.Waypoints[:len(l.Waypoints)-1]
}

// DistanceKm is the leg length.
func (l Leg) DistanceKm() float64 {
	var sum float64
	for _, wp := range l.travelled() {
		sum += wp.DistanceKm
	}
	return sum
}

// DurationMin is the leg driving time.
func (l Leg) DurationMin() int {
	sum := 0
	for _, wp := range l.travelled() {
		sum += wp.DurationMin
	}
	return sum
}

// DistanceKm is the sum over all legs.
func (t Trip) DistanceKm() float64 {
	var sum float64
	for _, l := range t.Legs {
		sum += l.DistanceKm()
	}
	return sum
}

// DurationMin is the sum over all legs.
func (t Trip) DurationMin() int {
	sum := 0
	for _, l := range t.Legs {
		sum += l.DurationMin()
	}
	return sum
}

// FromRecords builds a Trip with one leg per record.
func FromRecords(name string, recs []models.TripRouting) (*Trip, error) {
	t := &Trip{Name: name, Legs: make([]Leg, 0, len(recs))}
	for i := range recs {
		leg, err := NewLeg(&recs[i])
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i, err)
		}
		t.Legs = append(t.Legs, leg)
	}
	return t, nil
}

// Load reads JSON Lines of routing records, one leg per line.
// Blank lines are skipped.
func Load(name string, r io.Reader) (*Trip, error) {
	var recs []models.TripRouting

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var rec models.TripRouting
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read trip: %w", err)
	}

	return FromRecords(name, recs)
}
