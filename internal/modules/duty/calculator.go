// README: Landed-cost calculator; ordered duty cascade on cumulative assessable value.
package duty

import (
	"math"

	"jdmpulse/internal/modules/features"
)

// Calculator computes the itemized landed cost for a bid. It is a pure
// function of its inputs: no model dependency, no I/O, no clock.
type Calculator struct {
	tariff          Tariff
	referenceYear   int
	jpyToBDT        float64
	bdtToUSDDivisor float64
}

func NewCalculator(tariff Tariff, referenceYear int, jpyToBDT, bdtToUSDDivisor float64) *Calculator {
	return &Calculator{
		tariff:          tariff,
		referenceYear:   referenceYear,
		jpyToBDT:        jpyToBDT,
		bdtToUSDDivisor: bdtToUSDDivisor,
	}
}

func (c *Calculator) ReferenceYear() int {
	return c.referenceYear
}

func (c *Calculator) JPYToBDT() float64 {
	return c.jpyToBDT
}

// Compute runs the full cost pipeline for one bid. Intermediate arithmetic
// stays in full float precision; each line item is truncated toward zero
// exactly once, at the moment it enters the breakdown.
//
// The duty cascade is order-sensitive: customs duty is assessed on CIF,
// supplementary duty on CIF plus customs, the VAT family on that running
// total. Regulatory duty and the environmental surcharge deliberately fall
// back to plain CIF.
func (c *Calculator) Compute(bidJPY int64, v features.Vehicle) Breakdown {
	t := c.tariff

	// Japan-side costs, in JPY.
	bid := float64(bidJPY)
	auctionFee := bid * t.AuctionFeeRate
	totalJapan := bid + auctionFee +
		float64(t.ExportCertificateJPY) +
		float64(t.FreightInspectionJPY) +
		float64(t.ShippingJPY)

	// Single currency conversion point.
	cif := totalJapan * c.jpyToBDT

	customsRate, supplementaryRate := t.rates(v.EngineCC)
	if c.referenceYear-v.Year > t.AgeSurchargeAfterYears {
		customsRate += t.AgeSurcharge
	}

	// Cascade: each layer taxes the cumulative assessable value.
	customsDuty := cif * customsRate
	assessable1 := cif + customsDuty
	supplementaryDuty := assessable1 * supplementaryRate
	assessable2 := assessable1 + supplementaryDuty

	// Siblings on assessable2, not a further cascade.
	vat := assessable2 * t.VATRate
	advanceTax := assessable2 * t.AdvanceTaxRate
	ait := assessable2 * t.AITRate

	// Assessed on CIF, not on the cascaded value.
	regulatoryDuty := cif * t.RegulatoryDutyRate
	envRate := t.EnvSurchargeLowRate
	if v.EngineCC > t.EnvSurchargeCCThreshold {
		envRate = t.EnvSurchargeHighRate
	}
	environmentalSurcharge := cif * envRate

	totalDuties := customsDuty + supplementaryDuty + vat + advanceTax + ait +
		regulatoryDuty + environmentalSurcharge

	totalLocal := t.ClearingAgentFeeBDT + t.BRTARegistrationBDT + t.DocumentationFeeBDT

	totalLanded := cif + totalDuties + float64(totalLocal)

	dutyPercentage := 0.0
	if cif > 0 {
		dutyPercentage = math.Round(totalDuties/cif*100*10) / 10
	}

	return Breakdown{
		CurrencyConversion: CurrencyConversion{
			JPYToBDTRate:      c.jpyToBDT,
			TotalJapanCostJPY: trunc(totalJapan),
			TotalJapanCostBDT: trunc(totalJapan * c.jpyToBDT),
		},
		JapanCostsJPY: JapanCosts{
			WinningBid:        bidJPY,
			AuctionFee:        trunc(auctionFee),
			ExportCertificate: t.ExportCertificateJPY,
			FreightInspection: t.FreightInspectionJPY,
			Shipping:          t.ShippingJPY,
			Total:             trunc(totalJapan),
		},
		BangladeshDutiesBDT: ImportDuties{
			CIFValue:               trunc(cif),
			CustomsDuty:            trunc(customsDuty),
			SupplementaryDuty:      trunc(supplementaryDuty),
			VAT:                    trunc(vat),
			AdvanceTax:             trunc(advanceTax),
			AIT:                    trunc(ait),
			RegulatoryDuty:         trunc(regulatoryDuty),
			EnvironmentalSurcharge: trunc(environmentalSurcharge),
			TotalDuties:            trunc(totalDuties),
		},
		LocalCostsBDT: LocalCosts{
			ClearingAgentFee: t.ClearingAgentFeeBDT,
			BRTARegistration: t.BRTARegistrationBDT,
			DocumentationFee: t.DocumentationFeeBDT,
			Total:            totalLocal,
		},
		TotalLandedCostBDT: trunc(totalLanded),
		TotalLandedCostUSD: trunc(totalLanded / c.bdtToUSDDivisor),
		DutyPercentage:     dutyPercentage,
	}
}

// trunc drops the fractional part toward zero, the documented monetary
// policy. It is not rounding.
func trunc(v float64) int64 {
	return int64(v)
}
