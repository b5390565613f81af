package report

import "math"

// rankThreshold pairs a minimum-hours bound with its tier label. Highest
// first; the first bound at or below the player's hours wins.
type rankThreshold struct {
	minHours float64
	label    string
}

var rankThresholds = []rankThreshold{
	{80, "Legend"},
	{70, "Master"},
	{60, "Elite"},
	{50, "Veteran"},
	{35, "Experienced"},
	{25, "Advanced"},
	{15, "Intermediate"},
	{10, "Novice"},
	{1, "Beginner"},
}

// RankName maps accumulated hours to a tier label. Bounds are closed on
// the lower end: exactly 80 hours is already Legend. NaN yields "N/A".
func RankName(hours float64) string {
	if math.IsNaN(hours) {
		return "N/A"
	}
	for _, t := range rankThresholds {
		if hours >= t.minHours {
			return t.label
		}
	}
	return "Unranked"
}
