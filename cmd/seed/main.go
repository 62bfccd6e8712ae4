// Command seed fills a development database with plausible demo data so the
// UI has something to show without clicking through the flow repeatedly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/amconnect/assessment/api/internal/assessment/domain"
	"github.com/amconnect/assessment/api/internal/config"
	"github.com/amconnect/assessment/api/internal/infrastructure/sqlite"
)

type seedOptions struct {
	companyCount int
	surveyCount  int
	contactCount int
	reset        bool
	randomSeed   int64
}

var companyNames = []string{
	"Mehta Foods", "Sharma Textiles", "Verma Electronics", "Patel Exports",
	"Iyer Consulting", "Reddy Builders", "Khan Logistics", "Das Printing",
	"Nair Organics", "Gupta Hardware",
}

var contactMessages = []string{
	"We would like a consultation about our cash flow.",
	"Can you help us with a recovery plan?",
	"Interested in your margin improvement service.",
	"Please call us back regarding growth advisory.",
}

func main() {
	opts := seedOptions{}
	flag.IntVar(&opts.companyCount, "companies", 8, "number of demo companies to insert")
	flag.IntVar(&opts.surveyCount, "surveys", 12, "number of demo surveys to insert")
	flag.IntVar(&opts.contactCount, "contacts", 4, "number of demo contact messages to insert")
	flag.BoolVar(&opts.reset, "reset", false, "drop existing tables before seeding")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed for reproducible data")
	flag.Parse()

	cfg := config.Load()
	logger := log.New(os.Stdout, "[amconnect-seed] ", log.LstdFlags)

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if opts.reset {
		for _, table := range []string{"surveys", "contacts", "companies"} {
			if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
				logger.Fatalf("failed to drop %s: %v", table, err)
			}
		}
		logger.Printf("dropped existing tables")
	}

	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		logger.Fatalf("failed to create schema: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))
	companies := sqlite.NewCompanyRepository(db)
	surveys := sqlite.NewSurveyRepository(db)
	contacts := sqlite.NewContactRepository(db)

	var companyIDs []int64
	for i := 0; i < opts.companyCount; i++ {
		name := companyNames[i%len(companyNames)]
		company := &domain.Company{
			Name:     name,
			Email:    fmt.Sprintf("demo_%d_%d@amconnect.com", opts.randomSeed, i),
			Phone:    fmt.Sprintf("+91%010d", rng.Int63n(1e10)),
			Category: randomCategory(rng),
		}
		if err := companies.Create(ctx, company); err != nil {
			logger.Fatalf("failed to insert company: %v", err)
		}
		companyIDs = append(companyIDs, company.ID)
	}
	logger.Printf("inserted %d companies", len(companyIDs))

	inserted := 0
	for i := 0; i < opts.surveyCount && len(companyIDs) > 0; i++ {
		companyID := companyIDs[rng.Intn(len(companyIDs))]
		answers := randomAnswers(rng)
		score, err := domain.Score(answers)
		if err != nil {
			logger.Fatalf("generated an incomplete answer set: %v", err)
		}
		survey := &domain.Survey{CompanyID: companyID, Answers: answers, Score: score}
		if err := surveys.Create(ctx, survey); err != nil {
			logger.Fatalf("failed to insert survey: %v", err)
		}
		inserted++
	}
	logger.Printf("inserted %d surveys", inserted)

	for i := 0; i < opts.contactCount; i++ {
		contact := &domain.Contact{
			CompanyName: companyNames[rng.Intn(len(companyNames))],
			Name:        fmt.Sprintf("Demo Contact %d", i+1),
			Email:       fmt.Sprintf("contact_%d_%d@amconnect.com", opts.randomSeed, i),
			Phone:       fmt.Sprintf("+91%010d", rng.Int63n(1e10)),
			Message:     contactMessages[rng.Intn(len(contactMessages))],
		}
		if err := contacts.Create(ctx, contact); err != nil {
			logger.Fatalf("failed to insert contact: %v", err)
		}
	}
	logger.Printf("inserted %d contacts", opts.contactCount)

	logger.Printf("seeding complete (seed=%d)", opts.randomSeed)
}

func randomCategory(rng *rand.Rand) domain.Category {
	categories := domain.Categories()
	return categories[rng.Intn(len(categories))]
}

func randomAnswers(rng *rand.Rand) map[int]string {
	answers := make(map[int]string, domain.QuestionCount)
	yesNo := []string{"Yes", "No"}
	for i := 1; i <= domain.YesNoCount; i++ {
		answers[i] = yesNo[rng.Intn(len(yesNo))]
	}
	for i := domain.YesNoCount + 1; i <= domain.QuestionCount; i++ {
		answers[i] = domain.AgreementOptions[rng.Intn(len(domain.AgreementOptions))]
	}
	return answers
}
