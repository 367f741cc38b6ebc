package scoring

const (
	// DimensionMin and DimensionMax bound every dimension value (inclusive).
	DimensionMin = -10.0
	DimensionMax = 10.0

	// totalScale maps the [-50, 50] raw sum onto [-100, 100].
	totalScale = 2.0
)

// Dimension names, in rubric order.
const (
	DimEntryExit  = "entry_exit"
	DimGovernance = "governance"
	DimEconomics  = "economics"
	DimAgency     = "agency"
	DimCulture    = "culture"
)

// Names returns the dimension names in rubric order.
func Names() []string {
	return []string{DimEntryExit, DimGovernance, DimEconomics, DimAgency, DimCulture}
}

// Dimensions is the five-axis rubric for a single entity.
// Values are immutable once constructed; build with NewDimensions.
type Dimensions struct {
	entryExit  float64
	governance float64
	economics  float64
	agency     float64
	culture    float64

	constructed bool
}

// Breakdown is the exported view of a Dimensions value plus its total.
type Breakdown struct {
	EntryExit  float64 `json:"entry_exit" yaml:"entry_exit"`
	Governance float64 `json:"governance" yaml:"governance"`
	Economics  float64 `json:"economics" yaml:"economics"`
	Agency     float64 `json:"agency" yaml:"agency"`
	Culture    float64 `json:"culture" yaml:"culture"`
	Total      float64 `json:"total" yaml:"total"`
}

// NewDimensions validates and builds a Dimensions value. All five values are
// required and each must lie in [DimensionMin, DimensionMax].
func NewDimensions(entryExit, governance, economics, agency, culture float64) (Dimensions, error) {
	values := [...]float64{entryExit, governance, economics, agency, culture}
	for i, name := range Names() {
		if err := checkRange(name, values[i]); err != nil {
			return Dimensions{}, err
		}
	}

	return Dimensions{
		entryExit:   entryExit,
		governance:  governance,
		economics:   economics,
		agency:      agency,
		culture:     culture,
		constructed: true,
	}, nil
}

// MustDimensions is like NewDimensions but panics on invalid input.
// Intended for tests and literal fixtures only.
func MustDimensions(entryExit, governance, economics, agency, culture float64) Dimensions {
	d, err := NewDimensions(entryExit, governance, economics, agency, culture)
	if err != nil {
		panic(err)
	}
	return d
}

func checkRange(field string, v float64) error {
	// NaN fails both comparisons.
	if !(v >= DimensionMin && v <= DimensionMax) {
		return &ValidationError{
			Field:  field,
			Value:  v,
			Reason: "must be within [-10, 10]",
		}
	}
	return nil
}

func (d Dimensions) EntryExit() float64  { return d.entryExit }
func (d Dimensions) Governance() float64 { return d.governance }
func (d Dimensions) Economics() float64  { return d.economics }
func (d Dimensions) Agency() float64     { return d.agency }
func (d Dimensions) Culture() float64    { return d.culture }

// Valid reports whether d was produced by NewDimensions.
func (d Dimensions) Valid() bool { return d.constructed }

// Sum returns the raw sum of the five dimensions, in [-50, 50].
func (d Dimensions) Sum() float64 {
	return d.entryExit + d.governance + d.economics + d.agency + d.culture
}

// Total returns the alignment score in [-100, 100].
func (d Dimensions) Total() float64 {
	return d.Sum() * totalScale
}

// Breakdown returns the five named values and the total.
func (d Dimensions) Breakdown() Breakdown {
	return Breakdown{
		EntryExit:  d.entryExit,
		Governance: d.governance,
		Economics:  d.economics,
		Agency:     d.agency,
		Culture:    d.culture,
		Total:      d.Total(),
	}
}
