// Package synth generates fraud-labelled transaction tables for demos and tests.
package synth

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
)

// TransactionConfig configures the synthetic transaction generator
type TransactionConfig struct {
	Rows      int     `json:"rows"`
	FraudRate float64 `json:"fraud_rate"`
	NullRate  float64 `json:"null_rate"`
	Seed      int64   `json:"seed"`
}

// DefaultTransactionConfig returns the defaults used by the generate command
func DefaultTransactionConfig() TransactionConfig {
	return TransactionConfig{
		Rows:      1000,
		FraudRate: 0.12,
		NullRate:  0,
		Seed:      42,
	}
}

// TransactionHeader is the column layout of generated tables
var TransactionHeader = []string{
	"flag",
	"session_duration",
	"transaction_amount",
	"time_spent_on_payment_page",
	"transaction_status",
	"transaction_type",
	"customer_ip_location",
	"payment_method",
	"login_status",
	"visit_origin",
	"device_type",
}

var (
	statuses     = []string{"completed", "pending", "failed"}
	txTypes      = []string{"purchase", "transfer", "refund"}
	locations    = []string{"domestic", "foreign"}
	methods      = []string{"credit_card", "debit_card", "paypal", "crypto"}
	loginStates  = []string{"success", "failed_once", "failed_multiple"}
	origins      = []string{"direct", "search", "email", "ad"}
	deviceTypes  = []string{"mobile", "web", "tablet"}
	fraudWeights = map[string]float64{
		"failed":          3,
		"transfer":        2,
		"foreign":         4,
		"crypto":          5,
		"failed_multiple": 6,
		"email":           2,
	}
)

// TransactionGenerator produces fraud-labelled transaction tables where
// fraud rows skew toward longer sessions, larger amounts and riskier categories.
type TransactionGenerator struct {
	config TransactionConfig
	rng    *rand.Rand
}

// NewTransactionGenerator creates a generator seeded from config
func NewTransactionGenerator(config TransactionConfig) *TransactionGenerator {
	return &TransactionGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateRecords returns a header row followed by config.Rows data rows
func (g *TransactionGenerator) GenerateRecords() ([][]string, error) {
	if g.config.Rows <= 0 {
		return nil, fmt.Errorf("rows must be positive, got %d", g.config.Rows)
	}
	if g.config.FraudRate < 0 || g.config.FraudRate > 1 {
		return nil, fmt.Errorf("fraud rate must be within [0, 1], got %g", g.config.FraudRate)
	}

	records := make([][]string, 0, g.config.Rows+1)
	records = append(records, append([]string(nil), TransactionHeader...))
	for i := 0; i < g.config.Rows; i++ {
		records = append(records, g.generateRow(g.rng.Float64() < g.config.FraudRate))
	}
	return records, nil
}

func (g *TransactionGenerator) generateRow(fraud bool) []string {
	flag := "0"
	amountMean, sessionMean, paymentMean := 80.0, 300.0, 45.0
	if fraud {
		flag = "1"
		amountMean, sessionMean, paymentMean = 450.0, 520.0, 20.0
	}

	row := []string{
		flag,
		g.positive(sessionMean, sessionMean/3, 0),
		g.positive(amountMean, amountMean/2, 2),
		g.positive(paymentMean, paymentMean/4, 1),
		g.pick(statuses, fraud),
		g.pick(txTypes, fraud),
		g.pick(locations, fraud),
		g.pick(methods, fraud),
		g.pick(loginStates, fraud),
		g.pick(origins, fraud),
		g.pick(deviceTypes, fraud),
	}

	// Never blank the flag column
	for j := 1; j < len(row); j++ {
		if g.config.NullRate > 0 && g.rng.Float64() < g.config.NullRate {
			row[j] = ""
		}
	}
	return row
}

func (g *TransactionGenerator) positive(mean, sd float64, decimals int) string {
	v := math.Abs(mean + g.rng.NormFloat64()*sd)
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// pick draws uniformly for legitimate rows and by fraudWeights for fraud rows
func (g *TransactionGenerator) pick(options []string, fraud bool) string {
	if !fraud {
		return options[g.rng.Intn(len(options))]
	}

	total := 0.0
	weights := make([]float64, len(options))
	for i, opt := range options {
		w, ok := fraudWeights[opt]
		if !ok {
			w = 1
		}
		weights[i] = w
		total += w
	}

	r := g.rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return options[i]
		}
		r -= w
	}
	return options[len(options)-1]
}

// WriteCSV writes records to path, replacing any existing file
func WriteCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
