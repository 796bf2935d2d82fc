// README: Batch report generator; analyzes a CSV of vehicles and writes a cost report.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"jdmpulse/internal/config"
	"jdmpulse/internal/modules/analysis"
	"jdmpulse/internal/modules/duty"
	"jdmpulse/internal/modules/estimator"
	"jdmpulse/internal/modules/features"
)

func main() {
	var inputFile, outputFile, modelDir string
	var targetWinProb float64
	flag.StringVar(&inputFile, "input", "vehicles.csv", "input CSV (make,model,year,mileage_km,engine_cc,auction_grade)")
	flag.StringVar(&outputFile, "output", "report.csv", "output report CSV")
	flag.StringVar(&modelDir, "models", "", "model artifact directory (default: PULSE_MODEL_DIR)")
	flag.Float64Var(&targetWinProb, "target", 0, "target win probability (default: PULSE_DEFAULT_WIN_PROB)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if modelDir == "" {
		modelDir = cfg.Models.Dir
	}
	if targetWinProb == 0 {
		targetWinProb = cfg.Engine.DefaultWinProb
	}

	bundle, err := estimator.LoadBundle(modelDir)
	if err != nil {
		log.Fatalf("model load: %v", err)
	}
	builder := features.NewBuilder(cfg.Engine.ReferenceYear, bundle.MakeEncoder, bundle.ModelEncoder)
	calc := duty.NewCalculator(duty.DefaultTariff(), cfg.Engine.ReferenceYear, cfg.Engine.JPYToBDT, cfg.Engine.BDTToUSDDivisor)
	svc := analysis.NewService(estimator.NewService(bundle, builder), calc, cfg.Engine.PlatformFeeRate, cfg.Engine.DefaultWinProb)

	if err := run(svc, inputFile, outputFile, targetWinProb); err != nil {
		log.Fatalf("report failed: %v", err)
	}
}

func run(svc *analysis.Service, inputFile, outputFile string, targetWinProb float64) error {
	in, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	reader := csv.NewReader(in)
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{
		"make", "model", "year", "mileage_km", "engine_cc", "auction_grade",
		"predicted_bid_jpy", "recommended_bid_jpy", "cif_value_bdt",
		"total_duties_bdt", "total_landed_cost_bdt", "duty_percentage",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// Skip the input header row.
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read line %d: %w", line, err)
		}
		line++

		v, err := parseVehicle(record)
		if err != nil {
			log.Printf("skipping line %d: %v", line, err)
			continue
		}

		res, err := svc.Analyze(context.Background(), analysis.Request{Vehicle: v, TargetWinProb: targetWinProb})
		if err != nil {
			return fmt.Errorf("analyze line %d: %w", line, err)
		}

		row := []string{
			v.Make, v.Model,
			strconv.Itoa(v.Year),
			strconv.FormatInt(v.MileageKm, 10),
			strconv.Itoa(v.EngineCC),
			strconv.FormatFloat(v.AuctionGrade, 'f', -1, 64),
			strconv.FormatInt(res.PredictedWinningBidJPY, 10),
			strconv.FormatInt(res.RecommendedBidJPY, 10),
			strconv.FormatInt(res.BangladeshDutiesBDT.CIFValue, 10),
			strconv.FormatInt(res.BangladeshDutiesBDT.TotalDuties, 10),
			strconv.FormatInt(res.TotalLandedCostBDT, 10),
			strconv.FormatFloat(res.DutyPercentage, 'f', 1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write line %d: %w", line, err)
		}
	}
	return nil
}

func parseVehicle(record []string) (features.Vehicle, error) {
	if len(record) < 6 {
		return features.Vehicle{}, fmt.Errorf("expected 6 columns, got %d", len(record))
	}
	year, err := strconv.Atoi(record[2])
	if err != nil {
		return features.Vehicle{}, fmt.Errorf("year: %w", err)
	}
	mileage, err := strconv.ParseInt(record[3], 10, 64)
	if err != nil {
		return features.Vehicle{}, fmt.Errorf("mileage_km: %w", err)
	}
	engineCC, err := strconv.Atoi(record[4])
	if err != nil {
		return features.Vehicle{}, fmt.Errorf("engine_cc: %w", err)
	}
	grade, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return features.Vehicle{}, fmt.Errorf("auction_grade: %w", err)
	}
	return features.Vehicle{
		Make:         record[0],
		Model:        record[1],
		Year:         year,
		MileageKm:    mileage,
		EngineCC:     engineCC,
		AuctionGrade: grade,
	}, nil
}
