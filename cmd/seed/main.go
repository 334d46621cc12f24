// Command seed loads fund reference data from a JSON file into the
// database. It stands in for the upstream data-loading process: funds
// are never written through the HTTP API.
//
// Usage:
//
//	seed -file funds.json [-db ./data/fund_discovery.db]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/fundscope/Fund-Discovery-Backend/internal/database"
	"github.com/fundscope/Fund-Discovery-Backend/internal/model"
	"github.com/fundscope/Fund-Discovery-Backend/internal/repository"
	"github.com/fundscope/Fund-Discovery-Backend/internal/validation"
)

// fundRecord mirrors model.Fund with the inception date as a plain
// YYYY-MM-DD string, the format seed files use.
type fundRecord struct {
	FundID              string          `json:"fundId"`
	Name                string          `json:"name"`
	Category            string          `json:"category"`
	SubCategory         string          `json:"subCategory"`
	FundHouse           string          `json:"fundHouse"`
	FundManager         string          `json:"fundManager"`
	Benchmark           string          `json:"benchmark"`
	Description         string          `json:"description"`
	InvestmentObjective string          `json:"investmentObjective"`
	ExitLoad            string          `json:"exitLoad"`
	Nav                 float64         `json:"nav"`
	ExpenseRatio        float64         `json:"expenseRatio"`
	Aum                 float64         `json:"aum"`
	MinInvestment       float64         `json:"minInvestment"`
	Returns1Y           *float64        `json:"returns1Y"`
	Returns3Y           *float64        `json:"returns3Y"`
	Returns5Y           *float64        `json:"returns5Y"`
	Returns10Y          *float64        `json:"returns10Y"`
	RiskRating          string          `json:"riskRating"`
	InceptionDate       string          `json:"inceptionDate"`
	Holdings            []model.Holding `json:"holdings"`
}

func main() {
	filePath := flag.String("file", "", "path to the JSON file of fund records")
	dbPath := flag.String("db", "./data/fund_discovery.db", "path to the SQLite database")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("the -file flag is required")
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var records []fundRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	fundRepo := repository.NewFundRepository(db)
	ctx := context.Background()

	loaded := 0
	for _, record := range records {
		fund, err := toFund(record)
		if err != nil {
			log.Fatalf("Invalid record %q: %v", record.FundID, err)
		}
		if err := validation.ValidateFund(fund); err != nil {
			log.Fatalf("Invalid record %q: %v", record.FundID, err)
		}
		if err := fundRepo.UpsertFund(ctx, fund); err != nil {
			log.Fatalf("Failed to load fund %q: %v", record.FundID, err)
		}
		loaded++
	}

	log.Printf("Loaded %d funds from %s", loaded, *filePath)
}

func toFund(record fundRecord) (model.Fund, error) {
	inceptionDate, err := time.Parse("2006-01-02", record.InceptionDate)
	if err != nil {
		return model.Fund{}, err
	}

	return model.Fund{
		FundID:              record.FundID,
		Name:                record.Name,
		Category:            record.Category,
		SubCategory:         record.SubCategory,
		FundHouse:           record.FundHouse,
		FundManager:         record.FundManager,
		Benchmark:           record.Benchmark,
		Description:         record.Description,
		InvestmentObjective: record.InvestmentObjective,
		ExitLoad:            record.ExitLoad,
		Nav:                 record.Nav,
		ExpenseRatio:        record.ExpenseRatio,
		Aum:                 record.Aum,
		MinInvestment:       record.MinInvestment,
		Returns1Y:           record.Returns1Y,
		Returns3Y:           record.Returns3Y,
		Returns5Y:           record.Returns5Y,
		Returns10Y:          record.Returns10Y,
		RiskRating:          record.RiskRating,
		InceptionDate:       inceptionDate,
		Holdings:            record.Holdings,
	}, nil
}
