package trip

import (
	"fmt"
	"strings"
)

const nameWidth = 40

// HumanMinutes renders minutes as fixed-width "DDD days HH hr MM min"
// columns, blanking the parts that are zero.
func HumanMinutes(total int) string {
	hours, minutes := total/60, total%60
	days, hours := hours/24, hours%24

	parts := []string{strings.Repeat(" ", 8), strings.Repeat(" ", 5), strings.Repeat(" ", 6)}
	if days != 0 {
		parts[0] = fmt.Sprintf("%3d days", days)
	}
	if hours != 0 {
		parts[1] = fmt.Sprintf("%02d hr", hours)
	}
	if minutes != 0 {
		parts[2] = fmt.Sprintf("%02d min", minutes)
	}
	return strings.Join(parts, " ")
}

// FractionalHours renders 1.5 as "01:30".
func FractionalHours(h float64) string {
	whole := int(h)
	return fmt.Sprintf("%02d:%02d", whole, int((h-float64(whole))*60))
}

func (w Waypoint) String() string {
	name := []rune(w.Name)
	suffix := "   "
	if len(name) > nameWidth {
		name = name[:nameWidth]
		suffix = "..."
	}
	return fmt.Sprintf("[%7s] | %7.2f km | %s | %43s%s\n",
		w.Kind, w.DistanceKm, HumanMinutes(w.DurationMin), string(name), suffix)
}

func (l Leg) String() string {
	rule := strings.Repeat("- ", 44) + "\n"

	var b strings.Builder
	b.WriteString(l.Name + "\n")
	for _, wp := range l.Waypoints {
		b.WriteString("|-- " + wp.String())
	}
	b.WriteString(rule)
	fmt.Fprintf(&b, "|-- %s | %7.2f km | %s |\n", strings.Repeat(" ", 9), l.DistanceKm(), HumanMinutes(l.DurationMin()))
	b.WriteString(rule)
	return b.String()
}

func (t Trip) String() string {
	rule := strings.Repeat("-", 91) + "\n"

	var b strings.Builder
	b.WriteString(t.Name + "\n")
	for _, l := range t.Legs {
		for _, line := range strings.Split(strings.TrimSpace(l.String()), "\n") {
			b.WriteString("|-- " + line + "\n")
		}
	}
	b.WriteString(rule)
	fmt.Fprintf(&b, "%s | %7.2f km | %s |\n", strings.Repeat(" ", 17), t.DistanceKm(), HumanMinutes(t.DurationMin()))
	b.WriteString(rule)
	return b.String()
}
