// README: Vehicle attributes and the engineered feature vector fed to the bid models.
package features

// Vehicle holds the raw auction-sheet attributes of a single vehicle.
// Field ranges are validated at the transport boundary before any of the
// engine packages see them.
type Vehicle struct {
	Make         string
	Model        string
	Year         int
	MileageKm    int64
	EngineCC     int
	AuctionGrade float64
}

// Features is the engineered input the regression models were trained on.
// It is rebuilt from scratch for every request and never cached.
type Features struct {
	VehicleAge     float64
	MileageKm      float64
	EngineCC       float64
	AuctionGrade   float64
	MakeEncoded    float64
	ModelEncoded   float64
	MileagePerYear float64
	IsLuxuryEngine float64
	IsHighGrade    float64
}

// Vector returns the features in training column order. The models index
// coefficients by position, so this order must not change.
func (f Features) Vector() []float64 {
	return []float64{
		f.VehicleAge,
		f.MileageKm,
		f.EngineCC,
		f.AuctionGrade,
		f.MakeEncoded,
		f.ModelEncoded,
		f.MileagePerYear,
		f.IsLuxuryEngine,
		f.IsHighGrade,
	}
}
