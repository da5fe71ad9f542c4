// BrickVal: real estate and private equity return analytics.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/brickfolio/brickval/internal/analytics/cashflow"
	"github.com/brickfolio/brickval/internal/analytics/mortgage"
	"github.com/brickfolio/brickval/internal/analytics/property"
	"github.com/brickfolio/brickval/internal/analytics/returns"
	"github.com/brickfolio/brickval/internal/analytics/valuation"
	"github.com/brickfolio/brickval/internal/config"
	"github.com/brickfolio/brickval/pkg/models"
	"github.com/brickfolio/brickval/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickval",
	Short: "BrickVal — Real Estate & Private Equity Valuation Analytics",
	Long: `BrickVal (Bricks + Valuation)
A Go engine for real-estate and private-equity deal analysis: discounted
cash flow valuation, WACC, IRR/MIRR, property operating metrics, loan
amortization, break-even, scenario, sensitivity and Monte Carlo analysis.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("deal", "", "deal file with property, loan and forecast assumptions")
	rootCmd.PersistentFlags().Bool("json", false, "emit machine-readable JSON instead of tables")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(valueCmd)
	rootCmd.AddCommand(waccCmd)
	rootCmd.AddCommand(returnsCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(amortizeCmd)
	rootCmd.AddCommand(breakevenCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(simulateCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("BrickVal %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Value Command ---

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Value a cash flow forecast by discounted cash flow",
	Long: `Discount an explicit cash flow forecast and a Gordon growth terminal
value back to an enterprise value.

Examples:
  brickval value --cash-flows 65000,68000,71000,74000,77000 --rate 0.09
  brickval value --deal deals/maple_court.yaml --growth 0.015`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := loadDealIfSet(cmd)
		if err != nil {
			return err
		}
		in, err := forecastFromInputs(cmd, deal)
		if err != nil {
			return err
		}

		res, err := valuation.DCF(in)
		if err != nil {
			return err
		}
		if jsonOut(cmd) {
			return printJSON(res)
		}

		banner("BrickVal — Discounted Cash Flow")
		w := newTable()
		fmt.Fprintln(w, "PERIOD\tCASH FLOW\tPRESENT VALUE")
		for i, pv := range res.PresentValues {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, money(in.Forecast[i]), money(pv))
		}
		w.Flush()

		fmt.Println()
		w = newTable()
		fmt.Fprintf(w, "Explicit value:\t%s\n", money(res.ExplicitValue))
		fmt.Fprintf(w, "Terminal value:\t%s\n", money(res.TerminalValue))
		fmt.Fprintf(w, "Terminal value (PV):\t%s\n", money(res.TerminalValuePV))
		fmt.Fprintf(w, "Enterprise value:\t%s\n", money(res.EnterpriseValue))
		fmt.Fprintf(w, "Discount rate:\t%s\n", utils.FormatPercent(res.DiscountRate))
		fmt.Fprintf(w, "Terminal growth:\t%s\n", utils.FormatPercent(res.TerminalGrowth))
		w.Flush()
		return nil
	},
}

func init() {
	valueCmd.Flags().String("cash-flows", "", "comma separated forecast cash flows for periods 1..n")
	valueCmd.Flags().Float64("rate", 0, "per-period discount rate, e.g. 0.09")
	valueCmd.Flags().Float64("growth", 0, "terminal growth rate (default: engine.terminal_growth)")
}

// --- WACC Command ---

var waccCmd = &cobra.Command{
	Use:   "wacc",
	Short: "Compute the weighted average cost of capital",
	Long: `Blend the cost of equity and the after-tax cost of debt by market
value weights.

Example:
  brickval wacc --equity 600000 --debt 400000 --cost-equity 0.12 --cost-debt 0.06 --tax 0.25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		equity, _ := cmd.Flags().GetFloat64("equity")
		debt, _ := cmd.Flags().GetFloat64("debt")
		costEquity, _ := cmd.Flags().GetFloat64("cost-equity")
		costDebt, _ := cmd.Flags().GetFloat64("cost-debt")
		tax, _ := cmd.Flags().GetFloat64("tax")

		res, err := valuation.WACC(valuation.WACCInput{
			Equity:     equity,
			Debt:       debt,
			CostEquity: costEquity,
			CostDebt:   costDebt,
			TaxRate:    tax,
		})
		if err != nil {
			return err
		}
		if jsonOut(cmd) {
			return printJSON(res)
		}

		banner("BrickVal — Cost of Capital")
		w := newTable()
		fmt.Fprintf(w, "WACC:\t%s\n", utils.FormatPercent(res.WACC))
		fmt.Fprintf(w, "Equity weight:\t%s\n", utils.FormatPercent(res.EquityWeight))
		fmt.Fprintf(w, "Debt weight:\t%s\n", utils.FormatPercent(res.DebtWeight))
		fmt.Fprintf(w, "After-tax debt cost:\t%s\n", utils.FormatPercent(res.AfterTaxDebtCost))
		w.Flush()
		return nil
	},
}

func init() {
	waccCmd.Flags().Float64("equity", 0, "market value of equity")
	waccCmd.Flags().Float64("debt", 0, "market value of debt")
	waccCmd.Flags().Float64("cost-equity", 0, "cost of equity, e.g. 0.12")
	waccCmd.Flags().Float64("cost-debt", 0, "pre-tax cost of debt, e.g. 0.06")
	waccCmd.Flags().Float64("tax", 0, "marginal tax rate in [0, 1)")
}

// --- Returns Command ---

var returnsCmd = &cobra.Command{
	Use:   "returns",
	Short: "Compute IRR, and optionally NPV and MIRR, for a flow sequence",
	Long: `Analyze an investment's return from its full cash flow sequence,
period 0 first (the initial outlay as a negative flow).

Examples:
  brickval returns --flows -1000,500,500,500
  brickval returns --flows -100000,20000,20000,25000 --rate 0.08
  brickval returns --deal deals/maple_court.yaml --finance-rate 0.10 --reinvest-rate 0.12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := loadDealIfSet(cmd)
		if err != nil {
			return err
		}
		flows, err := flowsFromInputs(cmd, deal)
		if err != nil {
			return err
		}

		irrRes, err := returns.IRR(flows, returns.IRROptions{
			Guess:         cfg.Engine.IRRGuess,
			MaxIterations: cfg.Engine.IRRMaxIterations,
			Tolerance:     cfg.Engine.IRRTolerance,
		})
		if err != nil {
			return err
		}

		out := struct {
			IRR  models.ReturnResult `json:"irr"`
			NPV  *float64            `json:"npv,omitempty"`
			MIRR *float64            `json:"mirr,omitempty"`
		}{IRR: irrRes}

		rate, _ := cmd.Flags().GetFloat64("rate")
		if cmd.Flags().Changed("rate") {
			npv, err := returns.NPV(flows[1:], rate, -flows[0])
			if err != nil {
				return err
			}
			out.NPV = &npv
		}

		financeRate, _ := cmd.Flags().GetFloat64("finance-rate")
		reinvestRate, _ := cmd.Flags().GetFloat64("reinvest-rate")
		if cmd.Flags().Changed("finance-rate") || cmd.Flags().Changed("reinvest-rate") {
			mirr, err := returns.MIRR(flows, financeRate, reinvestRate)
			if err != nil {
				return err
			}
			out.MIRR = &mirr
		}

		if jsonOut(cmd) {
			return printJSON(out)
		}

		banner("BrickVal — Return Analysis")
		w := newTable()
		fmt.Fprintf(w, "IRR:\t%s\n", utils.FormatPercent(irrRes.Rate))
		if irrRes.Converged {
			fmt.Fprintf(w, "Convergence:\tyes (%d iterations)\n", irrRes.Iterations)
		} else {
			fmt.Fprintf(w, "Convergence:\tno, best estimate after %d iterations\n", irrRes.Iterations)
		}
		if out.NPV != nil {
			fmt.Fprintf(w, "NPV @ %s:\t%s\n", utils.FormatPercent(rate), money(*out.NPV))
		}
		if out.MIRR != nil {
			fmt.Fprintf(w, "MIRR:\t%s (finance %s, reinvest %s)\n",
				utils.FormatPercent(*out.MIRR), utils.FormatPercent(financeRate), utils.FormatPercent(reinvestRate))
		}
		w.Flush()
		return nil
	},
}

func init() {
	returnsCmd.Flags().String("flows", "", "comma separated cash flows, period 0 first")
	returnsCmd.Flags().Float64("rate", 0, "discount rate for an NPV line")
	returnsCmd.Flags().Float64("finance-rate", 0, "finance rate applied to negative flows (MIRR)")
	returnsCmd.Flags().Float64("reinvest-rate", 0, "reinvestment rate applied to positive flows (MIRR)")
}

// --- Metrics Command ---

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Compute property operating metrics",
	Long: `Compute the operating metric sheet for a single property: NOI, cap
rate, cash-on-cash, DSCR, LTV, GRM, expense ratio and break-even occupancy.

Examples:
  brickval metrics --deal deals/maple_court.yaml
  brickval metrics --price 1000000 --gross-income 120000 --vacancy 0.05 --opex 45000 \
      --cash-invested 250000 --cash-flow 21000 --loan 750000 --debt-service 48000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := loadDealIfSet(cmd)
		if err != nil {
			return err
		}

		var in models.PropertyInput
		if deal != nil {
			in = models.PropertyInput{
				PurchasePrice:     deal.Property.PurchasePrice,
				GrossIncome:       deal.Property.GrossIncome,
				VacancyRate:       deal.Property.VacancyRate,
				OperatingExpenses: deal.Property.OperatingExpenses,
				CashInvested:      deal.Property.CashInvested,
				AnnualCashFlow:    deal.Property.AnnualCashFlow,
			}
			if deal.HasLoan() {
				pay, err := mortgage.Payment(deal.Loan.Amount, deal.Loan.AnnualRate, deal.Loan.Years)
				if err != nil {
					return err
				}
				in.LoanAmount = deal.Loan.Amount
				in.AnnualDebtService = pay.Payment * 12
			}
		}

		override := func(name string, dst *float64) {
			if cmd.Flags().Changed(name) {
				*dst, _ = cmd.Flags().GetFloat64(name)
			}
		}
		override("price", &in.PurchasePrice)
		override("gross-income", &in.GrossIncome)
		override("vacancy", &in.VacancyRate)
		override("opex", &in.OperatingExpenses)
		override("cash-invested", &in.CashInvested)
		override("cash-flow", &in.AnnualCashFlow)
		override("loan", &in.LoanAmount)
		override("debt-service", &in.AnnualDebtService)

		m, err := property.Compute(in)
		if err != nil {
			return err
		}
		if jsonOut(cmd) {
			return printJSON(m)
		}

		banner("BrickVal — Property Metrics")
		w := newTable()
		fmt.Fprintf(w, "Effective gross income:\t%s\n", money(m.EffectiveGrossIncome))
		fmt.Fprintf(w, "Net operating income:\t%s\n", money(m.NOI))
		fmt.Fprintf(w, "Cap rate:\t%s\n", utils.FormatPercent(m.CapRate))
		fmt.Fprintf(w, "Cash-on-cash return:\t%s\n", utils.FormatPercent(m.CashOnCash))
		if m.DSCR != nil {
			fmt.Fprintf(w, "DSCR:\t%s\n", utils.FormatMultiple(*m.DSCR))
		} else {
			fmt.Fprintf(w, "DSCR:\tn/a (all cash)\n")
		}
		if m.LTV != nil {
			fmt.Fprintf(w, "LTV:\t%s\n", utils.FormatPercent(*m.LTV))
		} else {
			fmt.Fprintf(w, "LTV:\tn/a (all cash)\n")
		}
		fmt.Fprintf(w, "Gross rent multiplier:\t%s\n", utils.FormatMultiple(m.GrossRentMultiplier))
		fmt.Fprintf(w, "Operating expense ratio:\t%s\n", utils.FormatPercent(m.OperatingExpenseRatio))
		fmt.Fprintf(w, "Break-even occupancy:\t%s\n", utils.FormatPercent(m.BreakEvenOccupancy))
		w.Flush()
		return nil
	},
}

func init() {
	metricsCmd.Flags().Float64("price", 0, "purchase price")
	metricsCmd.Flags().Float64("gross-income", 0, "gross scheduled annual income")
	metricsCmd.Flags().Float64("vacancy", 0, "vacancy and credit loss rate in [0, 1]")
	metricsCmd.Flags().Float64("opex", 0, "annual operating expenses")
	metricsCmd.Flags().Float64("cash-invested", 0, "total cash invested")
	metricsCmd.Flags().Float64("cash-flow", 0, "annual pre-tax cash flow")
	metricsCmd.Flags().Float64("loan", 0, "loan amount (0 for all cash)")
	metricsCmd.Flags().Float64("debt-service", 0, "annual debt service (0 for all cash)")
}

// --- Amortize Command ---

var amortizeCmd = &cobra.Command{
	Use:   "amortize",
	Short: "Compute the mortgage payment and amortization schedule",
	Long: `Compute the level monthly payment for a fixed-rate loan and walk
the balance down to zero. Prints year-end rows unless --monthly is set.

Examples:
  brickval amortize --principal 200000 --rate 0.04 --years 25
  brickval amortize --deal deals/maple_court.yaml --monthly`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := loadDealIfSet(cmd)
		if err != nil {
			return err
		}

		principal, _ := cmd.Flags().GetFloat64("principal")
		rate, _ := cmd.Flags().GetFloat64("rate")
		years, _ := cmd.Flags().GetInt("years")
		if deal != nil && deal.HasLoan() {
			if !cmd.Flags().Changed("principal") {
				principal = deal.Loan.Amount
			}
			if !cmd.Flags().Changed("rate") {
				rate = deal.Loan.AnnualRate
			}
			if !cmd.Flags().Changed("years") {
				years = deal.Loan.Years
			}
		}
		if principal == 0 {
			return fmt.Errorf("no loan: pass --principal/--rate/--years or a financed --deal")
		}

		res, err := mortgage.Payment(principal, rate, years)
		if err != nil {
			return err
		}
		entries, err := mortgage.Schedule(principal, rate, years)
		if err != nil {
			return err
		}

		if jsonOut(cmd) {
			return printJSON(struct {
				Summary  models.MortgageResult      `json:"summary"`
				Schedule []models.AmortizationEntry `json:"schedule"`
			}{res, entries})
		}

		banner("BrickVal — Loan Amortization")
		w := newTable()
		fmt.Fprintf(w, "Monthly payment:\t%s\n", money(res.Payment))
		fmt.Fprintf(w, "Term:\t%d months\n", res.Months)
		fmt.Fprintf(w, "Total paid:\t%s\n", money(res.TotalPaid))
		fmt.Fprintf(w, "Total interest:\t%s\n", money(res.TotalInterest))
		w.Flush()

		monthly, _ := cmd.Flags().GetBool("monthly")
		fmt.Println()
		w = newTable()
		fmt.Fprintln(w, "PERIOD\tPAYMENT\tINTEREST\tPRINCIPAL\tBALANCE")
		for _, e := range entries {
			if !monthly && e.Period%12 != 0 && e.Period != len(entries) {
				continue
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				e.Period, money(e.Payment), money(e.Interest), money(e.Principal), money(e.Balance))
		}
		w.Flush()
		return nil
	},
}

func init() {
	amortizeCmd.Flags().Float64("principal", 0, "loan principal")
	amortizeCmd.Flags().Float64("rate", 0, "annual interest rate, e.g. 0.04")
	amortizeCmd.Flags().Int("years", 0, "loan term in years")
	amortizeCmd.Flags().Bool("monthly", false, "print every month instead of year-end rows")
}

// --- Breakeven Command ---

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Find the period where cumulative cash flow turns non-negative",
	Long: `Accumulate a cash flow sequence, period 0 first, and report the
first period at which the running total recovers the initial outlay.

Example:
  brickval breakeven --flows -100000,20000,20000,20000,20000,20000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := loadDealIfSet(cmd)
		if err != nil {
			return err
		}
		flows, err := flowsFromInputs(cmd, deal)
		if err != nil {
			return err
		}

		res, err := cashflow.BreakEven(flows)
		if err != nil {
			return err
		}
		if jsonOut(cmd) {
			return printJSON(res)
		}

		banner("BrickVal — Break-Even Analysis")
		w := newTable()
		fmt.Fprintln(w, "PERIOD\tCASH FLOW\tCUMULATIVE")
		for i, cum := range res.Cumulative {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i, money(flows[i]), money(cum))
		}
		w.Flush()

		fmt.Println()
		if res.Period != nil {
			fmt.Printf("Break-even at period %d\n", *res.Period)
		} else {
			fmt.Println("Break-even not reached within the horizon")
		}
		return nil
	},
}

func init() {
	breakevenCmd.Flags().String("flows", "", "comma separated cash flows, period 0 first")
}

// --- Scenarios Command ---

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Value a forecast under named growth scenarios",
	Long: `Re-value the forecast under each scenario's growth adjustment. Uses
the deal file's scenario list when present, otherwise the built-in
pessimistic/base/optimistic set.

Examples:
  brickval scenarios --cash-flows 65000,68000,71000 --rate 0.09
  brickval scenarios --deal deals/maple_court.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := loadDealIfSet(cmd)
		if err != nil {
			return err
		}
		in, err := forecastFromInputs(cmd, deal)
		if err != nil {
			return err
		}

		scenarios := valuation.DefaultScenarios()
		if deal != nil && len(deal.Scenarios) > 0 {
			scenarios = make([]valuation.Scenario, len(deal.Scenarios))
			for i, s := range deal.Scenarios {
				scenarios[i] = valuation.Scenario{Name: s.Name, Growth: s.Growth}
			}
		}

		results, err := valuation.ScenarioAnalysis(in.Forecast, in.DiscountRate, in.TerminalGrowth, scenarios)
		if err != nil {
			return err
		}
		if jsonOut(cmd) {
			return printJSON(results)
		}

		banner("BrickVal — Scenario Analysis")
		w := newTable()
		fmt.Fprintln(w, "SCENARIO\tGROWTH\tENTERPRISE VALUE")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, utils.FormatPercent(r.Growth), money(r.Valuation.EnterpriseValue))
		}
		w.Flush()
		return nil
	},
}

func init() {
	scenariosCmd.Flags().String("cash-flows", "", "comma separated forecast cash flows for periods 1..n")
	scenariosCmd.Flags().Float64("rate", 0, "per-period discount rate")
	scenariosCmd.Flags().Float64("growth", 0, "terminal growth rate (default: engine.terminal_growth)")
}

// --- Sensitivity Command ---

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Sweep enterprise value over discount rate and terminal growth",
	Long: `Cross two assumption ranges and value the forecast at every pair,
printing the grid with one row per discount rate.

Example:
  brickval sensitivity --cash-flows 65000,68000,71000 \
      --rates 0.07,0.08,0.09,0.10 --growths 0.01,0.02,0.03`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := loadDealIfSet(cmd)
		if err != nil {
			return err
		}
		forecast, err := seriesFromInputs(cmd, deal)
		if err != nil {
			return err
		}

		ratesStr, _ := cmd.Flags().GetString("rates")
		growthsStr, _ := cmd.Flags().GetString("growths")
		if ratesStr == "" || growthsStr == "" {
			return fmt.Errorf("pass --rates and --growths as comma separated lists")
		}
		rates, err := parseFloats(ratesStr)
		if err != nil {
			return fmt.Errorf("invalid --rates: %w", err)
		}
		growths, err := parseFloats(growthsStr)
		if err != nil {
			return fmt.Errorf("invalid --growths: %w", err)
		}

		grid, err := valuation.SensitivityAnalysis(forecast, rates, growths, cfg.Simulation.Workers)
		if err != nil {
			return err
		}
		if jsonOut(cmd) {
			return printJSON(grid)
		}

		banner("BrickVal — Sensitivity Analysis")
		w := newTable()
		fmt.Fprint(w, "RATE \\ GROWTH")
		for _, g := range grid.Growths {
			fmt.Fprintf(w, "\t%s", utils.FormatPercent(g))
		}
		fmt.Fprintln(w)
		for i, r := range grid.Rates {
			fmt.Fprint(w, utils.FormatPercent(r))
			for j := range grid.Growths {
				cell := grid.Cells[i*len(grid.Growths)+j]
				fmt.Fprintf(w, "\t%s", utils.FormatCompact(cell.EnterpriseValue, cfg.Output.Currency))
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		return nil
	},
}

func init() {
	sensitivityCmd.Flags().String("cash-flows", "", "comma separated forecast cash flows for periods 1..n")
	sensitivityCmd.Flags().String("rates", "", "comma separated discount rates to sweep")
	sensitivityCmd.Flags().String("growths", "", "comma separated terminal growth rates to sweep")
}

// --- Simulate Command ---

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Monte Carlo valuation over a random growth distribution",
	Long: `Draw a growth path per trial from a normal distribution, value each
path by DCF and report the distribution of enterprise values. A fixed
--seed reproduces the same samples at any worker count.

Examples:
  brickval simulate --base 65000 --years 5 --rate 0.09 --mean 0.02 --stddev 0.05
  brickval simulate --deal deals/maple_court.yaml --trials 50000 --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := loadDealIfSet(cmd)
		if err != nil {
			return err
		}

		in := valuation.SimulationInput{
			Percentiles: cfg.Simulation.Percentiles,
			Workers:     cfg.Simulation.Workers,
		}
		in.BaseCashFlow, _ = cmd.Flags().GetFloat64("base")
		in.Years, _ = cmd.Flags().GetInt("years")
		in.Trials, _ = cmd.Flags().GetInt("trials")
		in.GrowthMean, _ = cmd.Flags().GetFloat64("mean")
		in.GrowthStdDev, _ = cmd.Flags().GetFloat64("stddev")
		in.DiscountRate, _ = cmd.Flags().GetFloat64("rate")

		if !cmd.Flags().Changed("trials") {
			in.Trials = cfg.Simulation.Trials
		}
		if deal != nil {
			if len(deal.Forecast.CashFlows) > 0 {
				if !cmd.Flags().Changed("base") {
					in.BaseCashFlow = deal.Forecast.CashFlows[0]
				}
				if !cmd.Flags().Changed("years") {
					in.Years = len(deal.Forecast.CashFlows)
				}
			}
			if !cmd.Flags().Changed("rate") {
				in.DiscountRate = deal.Forecast.DiscountRate
			}
		}
		if !cmd.Flags().Changed("base") && (deal == nil || len(deal.Forecast.CashFlows) == 0) {
			return fmt.Errorf("no base cash flow: pass --base or --deal")
		}
		if !cmd.Flags().Changed("rate") && deal == nil {
			return fmt.Errorf("no discount rate: pass --rate or --deal")
		}

		in.Seed, _ = cmd.Flags().GetInt64("seed")
		if !cmd.Flags().Changed("seed") {
			in.Seed = time.Now().UnixNano()
		}

		res, err := valuation.Simulate(in)
		if err != nil {
			return err
		}
		if jsonOut(cmd) {
			return printJSON(res)
		}

		banner("BrickVal — Monte Carlo Simulation")
		w := newTable()
		fmt.Fprintf(w, "Trials:\t%d\n", res.Trials)
		fmt.Fprintf(w, "Mean:\t%s\n", money(res.Mean))
		fmt.Fprintf(w, "Std dev:\t%s\n", money(res.StdDev))
		fmt.Fprintf(w, "Min:\t%s\n", money(res.Min))
		fmt.Fprintf(w, "Max:\t%s\n", money(res.Max))
		w.Flush()

		fmt.Println()
		w = newTable()
		fmt.Fprintln(w, "PERCENTILE\tENTERPRISE VALUE")
		for _, p := range res.Percentiles {
			fmt.Fprintf(w, "P%g\t%s\n", p.Pct, money(p.Value))
		}
		w.Flush()
		return nil
	},
}

func init() {
	simulateCmd.Flags().Float64("base", 0, "base cash flow compounded forward each trial")
	simulateCmd.Flags().Int("years", 5, "forecast horizon in years")
	simulateCmd.Flags().Int("trials", 0, "simulated paths (default: simulation.trials)")
	simulateCmd.Flags().Float64("mean", 0.02, "mean of the annual growth distribution")
	simulateCmd.Flags().Float64("stddev", 0.05, "standard deviation of annual growth")
	simulateCmd.Flags().Float64("rate", 0, "per-period discount rate")
	simulateCmd.Flags().Int64("seed", 0, "random seed (default: time-based)")
}

// --- Input resolution helpers ---

// loadDealIfSet loads the deal file named by the persistent --deal flag,
// or returns nil when the flag is unset.
func loadDealIfSet(cmd *cobra.Command) (*config.Deal, error) {
	path, _ := cmd.Flags().GetString("deal")
	if path == "" {
		return nil, nil
	}
	return config.LoadDeal(path)
}

// seriesFromInputs resolves the forecast series from --cash-flows, falling
// back to the deal file.
func seriesFromInputs(cmd *cobra.Command, deal *config.Deal) (cashflow.Series, error) {
	if s, _ := cmd.Flags().GetString("cash-flows"); s != "" {
		flows, err := parseFloats(s)
		if err != nil {
			return nil, fmt.Errorf("invalid --cash-flows: %w", err)
		}
		return cashflow.Series(flows), nil
	}
	if deal != nil && len(deal.Forecast.CashFlows) > 0 {
		return cashflow.Series(deal.Forecast.CashFlows), nil
	}
	return nil, fmt.Errorf("no cash flows: pass --cash-flows or --deal")
}

// forecastFromInputs resolves a full DCF input. Command line flags win over
// the deal file; the terminal growth default comes from config.
func forecastFromInputs(cmd *cobra.Command, deal *config.Deal) (valuation.DCFInput, error) {
	in := valuation.DCFInput{TerminalGrowth: cfg.Engine.TerminalGrowth}

	forecast, err := seriesFromInputs(cmd, deal)
	if err != nil {
		return in, err
	}
	in.Forecast = forecast

	if deal != nil {
		in.DiscountRate = deal.Forecast.DiscountRate
		if deal.Forecast.TerminalGrowth != nil {
			in.TerminalGrowth = *deal.Forecast.TerminalGrowth
		}
	}
	if cmd.Flags().Changed("rate") {
		in.DiscountRate, _ = cmd.Flags().GetFloat64("rate")
	} else if deal == nil {
		return in, fmt.Errorf("no discount rate: pass --rate or --deal")
	}
	if cmd.Flags().Changed("growth") {
		in.TerminalGrowth, _ = cmd.Flags().GetFloat64("growth")
	}
	return in, nil
}

// flowsFromInputs resolves a full flow sequence, period 0 first. A deal
// contributes its cash invested as the outlay followed by the forecast.
func flowsFromInputs(cmd *cobra.Command, deal *config.Deal) (cashflow.Series, error) {
	if s, _ := cmd.Flags().GetString("flows"); s != "" {
		flows, err := parseFloats(s)
		if err != nil {
			return nil, fmt.Errorf("invalid --flows: %w", err)
		}
		return cashflow.Series(flows), nil
	}
	if deal != nil && len(deal.Forecast.CashFlows) > 0 {
		flows := make([]float64, 0, len(deal.Forecast.CashFlows)+1)
		flows = append(flows, -deal.Property.CashInvested)
		flows = append(flows, deal.Forecast.CashFlows...)
		return cashflow.Series(flows), nil
	}
	return nil, fmt.Errorf("no cash flows: pass --flows or --deal")
}

// --- Output helpers ---

func banner(title string) {
	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("  %s\n", title)
	fmt.Println("═══════════════════════════════════════")
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func money(amount float64) string {
	return utils.FormatMoney(amount, cfg.Output.Currency)
}

func jsonOut(cmd *cobra.Command) bool {
	ok, _ := cmd.Flags().GetBool("json")
	return ok
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("empty value in list %q", s)
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		vals = append(vals, f)
	}
	return vals, nil
}
