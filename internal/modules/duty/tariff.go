// README: Bangladesh import tariff schedule and Japan-side fee constants.
package duty

// RateBucket pairs the customs and supplementary duty rates applied to an
// engine displacement band.
type RateBucket struct {
	MaxEngineCC           int // inclusive upper bound; 0 means no cap
	CustomsDutyRate       float64
	SupplementaryDutyRate float64
}

// Tariff carries every rate and fixed fee of the landed-cost computation.
// Keeping it a value makes the schedule explicit in tests and lets a revised
// schedule be introduced without touching the cascade.
type Tariff struct {
	AuctionFeeRate float64

	ExportCertificateJPY int64
	FreightInspectionJPY int64
	ShippingJPY          int64

	Buckets []RateBucket

	AgeSurchargeAfterYears int
	AgeSurcharge           float64

	VATRate            float64
	AdvanceTaxRate     float64
	AITRate            float64
	RegulatoryDutyRate float64

	EnvSurchargeCCThreshold int
	EnvSurchargeHighRate    float64
	EnvSurchargeLowRate     float64

	ClearingAgentFeeBDT int64
	BRTARegistrationBDT int64
	DocumentationFeeBDT int64
}

// DefaultTariff is the schedule in force for the current fiscal year. The
// bucket rates rise steeply with displacement; >2500cc is the luxury band.
func DefaultTariff() Tariff {
	return Tariff{
		AuctionFeeRate: 0.05,

		ExportCertificateJPY: 15_000,
		FreightInspectionJPY: 25_000,
		ShippingJPY:          150_000,

		Buckets: []RateBucket{
			{MaxEngineCC: 1500, CustomsDutyRate: 1.25, SupplementaryDutyRate: 0.20},
			{MaxEngineCC: 2000, CustomsDutyRate: 1.50, SupplementaryDutyRate: 0.30},
			{MaxEngineCC: 2500, CustomsDutyRate: 2.50, SupplementaryDutyRate: 0.35},
			{MaxEngineCC: 0, CustomsDutyRate: 5.00, SupplementaryDutyRate: 0.45},
		},

		AgeSurchargeAfterYears: 5,
		AgeSurcharge:           0.50,

		VATRate:            0.15,
		AdvanceTaxRate:     0.05,
		AITRate:            0.03,
		RegulatoryDutyRate: 0.04,

		EnvSurchargeCCThreshold: 2500,
		EnvSurchargeHighRate:    0.02,
		EnvSurchargeLowRate:     0.01,

		ClearingAgentFeeBDT: 50_000,
		BRTARegistrationBDT: 85_000,
		DocumentationFeeBDT: 15_000,
	}
}

// rates selects the duty rate pair for an engine displacement.
func (t Tariff) rates(engineCC int) (customs, supplementary float64) {
	for _, b := range t.Buckets {
		if b.MaxEngineCC == 0 || engineCC <= b.MaxEngineCC {
			return b.CustomsDutyRate, b.SupplementaryDutyRate
		}
	}
	last := t.Buckets[len(t.Buckets)-1]
	return last.CustomsDutyRate, last.SupplementaryDutyRate
}
