// README: Feature builder; derives model inputs from raw vehicle attributes.
package features

const (
	luxuryEngineCC = 3000
	highGradeMin   = 4.5
)

// Builder turns a Vehicle into the Features the models expect. It is pure and
// safe for concurrent use; the encoders are read-only after construction.
type Builder struct {
	referenceYear int
	makeEnc       *Encoder
	modelEnc      *Encoder
}

// NewBuilder pins the reference year explicitly so a running service stays
// consistent with the year the models were trained against.
func NewBuilder(referenceYear int, makeEnc, modelEnc *Encoder) *Builder {
	return &Builder{referenceYear: referenceYear, makeEnc: makeEnc, modelEnc: modelEnc}
}

func (b *Builder) ReferenceYear() int {
	return b.referenceYear
}

func (b *Builder) Build(v Vehicle) Features {
	age := float64(b.referenceYear - v.Year)
	if age == 0 {
		// Brand-new vehicles count as half a year old so the
		// mileage-per-year ratio stays defined.
		age = 0.5
	}

	makeIdx, ok := b.makeEnc.Encode(v.Make)
	if !ok {
		makeIdx = b.makeEnc.DefaultIndex()
	}
	modelIdx, ok := b.modelEnc.Encode(v.Model)
	if !ok {
		modelIdx = b.modelEnc.DefaultIndex()
	}

	f := Features{
		VehicleAge:     age,
		MileageKm:      float64(v.MileageKm),
		EngineCC:       float64(v.EngineCC),
		AuctionGrade:   v.AuctionGrade,
		MakeEncoded:    float64(makeIdx),
		ModelEncoded:   float64(modelIdx),
		MileagePerYear: float64(v.MileageKm) / age,
	}
	if v.EngineCC >= luxuryEngineCC {
		f.IsLuxuryEngine = 1
	}
	if v.AuctionGrade >= highGradeMin {
		f.IsHighGrade = 1
	}
	return f
}
