package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Deal describes a single property deal: the assumption set the CLI feeds
// into the analytics packages.
type Deal struct {
	Name      string         `mapstructure:"name"      yaml:"name"`
	Property  PropertyDeal   `mapstructure:"property"  yaml:"property"`
	Loan      LoanDeal       `mapstructure:"loan"      yaml:"loan"`
	Forecast  ForecastDeal   `mapstructure:"forecast"  yaml:"forecast"`
	Scenarios []ScenarioDeal `mapstructure:"scenarios" yaml:"scenarios"`
}

// PropertyDeal holds the income and cost assumptions for one property.
type PropertyDeal struct {
	PurchasePrice     float64 `mapstructure:"purchase_price"     yaml:"purchase_price"`
	GrossIncome       float64 `mapstructure:"gross_income"       yaml:"gross_income"`
	VacancyRate       float64 `mapstructure:"vacancy_rate"       yaml:"vacancy_rate"`
	OperatingExpenses float64 `mapstructure:"operating_expenses" yaml:"operating_expenses"`
	CashInvested      float64 `mapstructure:"cash_invested"      yaml:"cash_invested"`
	AnnualCashFlow    float64 `mapstructure:"annual_cash_flow"   yaml:"annual_cash_flow"`
}

// LoanDeal holds the financing terms. A zero Amount means an all-cash deal.
type LoanDeal struct {
	Amount     float64 `mapstructure:"amount"      yaml:"amount"`
	AnnualRate float64 `mapstructure:"annual_rate" yaml:"annual_rate"`
	Years      int     `mapstructure:"years"       yaml:"years"`
}

// ForecastDeal holds the cash flow projection used for valuation.
// TerminalGrowth left nil falls back to engine.terminal_growth.
type ForecastDeal struct {
	DiscountRate   float64   `mapstructure:"discount_rate"   yaml:"discount_rate"`
	TerminalGrowth *float64  `mapstructure:"terminal_growth" yaml:"terminal_growth"`
	CashFlows      []float64 `mapstructure:"cash_flows"      yaml:"cash_flows"`
}

// ScenarioDeal names one growth assumption for scenario analysis.
type ScenarioDeal struct {
	Name   string  `mapstructure:"name"   yaml:"name"`
	Growth float64 `mapstructure:"growth" yaml:"growth"`
}

// LoadDeal reads and validates a deal file from a specific path.
func LoadDeal(path string) (*Deal, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading deal file %s: %w", path, err)
	}

	var d Deal
	if err := v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("error unmarshaling deal file %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("deal file %s: %w", path, err)
	}
	return &d, nil
}

// Validate checks the deal's shape. Numeric domain rules (rate floors, zero
// denominators) stay with the analytics packages; this only rejects inputs
// no calculator could ever accept.
func (d *Deal) Validate() error {
	if d.Property.PurchasePrice < 0 {
		return fmt.Errorf("config: property.purchase_price must be non-negative, got %v", d.Property.PurchasePrice)
	}
	if d.Property.GrossIncome < 0 {
		return fmt.Errorf("config: property.gross_income must be non-negative, got %v", d.Property.GrossIncome)
	}
	if d.Property.VacancyRate < 0 || d.Property.VacancyRate > 1 {
		return fmt.Errorf("config: property.vacancy_rate must lie in [0, 1], got %v", d.Property.VacancyRate)
	}
	if d.Property.OperatingExpenses < 0 {
		return fmt.Errorf("config: property.operating_expenses must be non-negative, got %v", d.Property.OperatingExpenses)
	}
	if d.Property.CashInvested < 0 {
		return fmt.Errorf("config: property.cash_invested must be non-negative, got %v", d.Property.CashInvested)
	}
	if d.Loan.Amount < 0 {
		return fmt.Errorf("config: loan.amount must be non-negative, got %v", d.Loan.Amount)
	}
	if d.Loan.AnnualRate < 0 {
		return fmt.Errorf("config: loan.annual_rate must be non-negative, got %v", d.Loan.AnnualRate)
	}
	if d.Loan.Years < 0 {
		return fmt.Errorf("config: loan.years must be non-negative, got %d", d.Loan.Years)
	}
	if d.Loan.Amount > 0 && d.Loan.Years == 0 {
		return fmt.Errorf("config: loan.years is required when loan.amount is set")
	}
	return nil
}

// HasLoan reports whether the deal is financed.
func (d *Deal) HasLoan() bool {
	return d.Loan.Amount > 0
}
