package scoring

// DimensionInfo describes one rubric axis and what its poles mean.
type DimensionInfo struct {
	Name    string `json:"name" yaml:"name"`
	Title   string `json:"title" yaml:"title"`
	Min     string `json:"min" yaml:"min"`
	Neutral string `json:"neutral" yaml:"neutral"`
	Max     string `json:"max" yaml:"max"`
}

// Rubric returns the five dimension descriptions in rubric order.
func Rubric() []DimensionInfo {
	return []DimensionInfo{
		{
			Name:    DimEntryExit,
			Title:   "Voluntarism (The Gate)",
			Min:     "Slavery, prison, coercion, no exit",
			Neutral: "Contractual obligation, high-friction exit",
			Max:     "Radical free agency, open door, voluntary association",
		},
		{
			Name:    DimGovernance,
			Title:   "Governance (The Crown)",
			Min:     "Totalitarian dictator, god-king",
			Neutral: "Representative democracy, corporate board",
			Max:     "Common consent, unanimous voice",
		},
		{
			Name:    DimEconomics,
			Title:   "Economics (The Purse)",
			Min:     "Hyper-extraction, hoarding, oligarchy",
			Neutral: "Mixed economy, middle class",
			Max:     "No poor among them, circular wealth",
		},
		{
			Name:    DimAgency,
			Title:   "Agency (The Soul)",
			Min:     "Manipulation, brainwashing, algorithmic control",
			Neutral: "Neutral service, utility",
			Max:     "Sovereignty, expansion of capability, education",
		},
		{
			Name:    DimCulture,
			Title:   "Culture (The Spirit)",
			Min:     "Hate, division, war",
			Neutral: "Tolerance, coexistence",
			Max:     "Righteousness, unity",
		},
	}
}
