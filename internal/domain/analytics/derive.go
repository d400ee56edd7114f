package analytics

// Growth returns the period-over-period change in percent. A metric that
// appears from nothing counts as 100% growth; two empty periods are flat.
func Growth(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// Recommendations produces the rule-based advice shown on the dashboard.
func Recommendations(postsLast30Days, activeCampaigns, platformsUsed int) []string {
	recs := []string{}
	if postsLast30Days < 7 {
		recs = append(recs, "Increase posting frequency to at least 2 posts per week for better engagement")
	}
	if activeCampaigns == 0 {
		recs = append(recs, "Start a marketing campaign to boost your cafe's visibility")
	}
	if platformsUsed < 2 {
		recs = append(recs, "Expand to more social media platforms to reach a wider audience")
	}
	recs = append(recs, "Post during peak hours (8-10 AM and 5-7 PM) to maximize reach")
	return recs
}
