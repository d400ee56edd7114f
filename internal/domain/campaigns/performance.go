package campaigns

// AverageOrderValue is the assumed revenue per conversion used for ROAS
// across campaigns and dashboard rollups.
const AverageOrderValue = 15.0

// Performance holds figures derived from the stored cumulative counters.
type Performance struct {
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Engagements    int64   `json:"engagements"`
	Conversions    int64   `json:"conversions"`
	Spend          float64 `json:"spend"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	CPC            float64 `json:"cpc"`
	ROAS           float64 `json:"roas"`
}

// ComputePerformance derives CTR, conversion rate, CPC and ROAS from raw
// counters. Every ratio is 0 when its denominator is 0.
func ComputePerformance(m Metrics) Performance {
	p := Performance{
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		Engagements: m.Engagements,
		Conversions: m.Conversions,
		Spend:       m.Spend,
	}

	if m.Impressions > 0 {
		p.CTR = float64(m.Clicks) / float64(m.Impressions) * 100
	}
	if m.Clicks > 0 {
		p.ConversionRate = float64(m.Conversions) / float64(m.Clicks) * 100
		if m.Spend > 0 {
			p.CPC = m.Spend / float64(m.Clicks)
		}
	}
	if m.Spend > 0 {
		p.ROAS = float64(m.Conversions) * AverageOrderValue / m.Spend
	}
	return p
}

// ROI summarizes profitability of a campaign assuming AverageOrderValue
// revenue per conversion.
type ROI struct {
	ROI     float64 `json:"roi"`
	Revenue float64 `json:"revenue"`
	Spend   float64 `json:"spend"`
	Profit  float64 `json:"profit"`
}

func ComputeROI(m Metrics) ROI {
	revenue := float64(m.Conversions) * AverageOrderValue
	if m.Spend == 0 {
		return ROI{}
	}
	return ROI{
		ROI:     (revenue - m.Spend) / m.Spend * 100,
		Revenue: revenue,
		Spend:   m.Spend,
		Profit:  revenue - m.Spend,
	}
}
