package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/R4ns0m101/physika/internal/calculator"
	"github.com/R4ns0m101/physika/internal/config"
	"github.com/R4ns0m101/physika/internal/history"
	"github.com/R4ns0m101/physika/internal/kinematics"
	"github.com/R4ns0m101/physika/internal/tui"
)

var (
	historyFile string
	configFile  string
	limit       int
	skipConfirm bool

	// quantity flags for the solve command; presence is detected with
	// Flags().Changed, an omitted flag means "unknown"
	speed        float64
	timeVal      float64
	distance     float64
	initialVel   float64
	finalVel     float64
	acceleration float64
	height       float64
)

// quantityFlags maps solve command flag names to quantities.
var quantityFlags = []struct {
	name string
	q    kinematics.Quantity
	dst  *float64
}{
	{"speed", kinematics.Speed, &speed},
	{"time", kinematics.Time, &timeVal},
	{"distance", kinematics.Distance, &distance},
	{"initial-velocity", kinematics.InitialVelocity, &initialVel},
	{"final-velocity", kinematics.FinalVelocity, &finalVel},
	{"acceleration", kinematics.Acceleration, &acceleration},
	{"height", kinematics.Height, &height},
}

var cfg *config.Config

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	var err error
	cfg, err = config.FromEnv()
	if err != nil {
		log.Printf("warning: bad environment config, using defaults: %v", err)
		cfg = config.Default()
	}

	rootCmd := &cobra.Command{
		Use:   "physika",
		Short: "high school physics assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			effectiveConfig()
			if cfg.NoColor {
				os.Setenv("NO_COLOR", "1")
			}
			lg := history.Open(cfg.HistoryFile)
			calc := calculator.New(kinematics.NewRegistry(), lg)
			return tui.Run(calc, lg, cfg.HistoryLimit)
		},
	}
	rootCmd.PersistentFlags().StringVar(&historyFile, "history", "", "history file path")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	solveCmd := &cobra.Command{
		Use:   "solve [topic]",
		Short: "solve one problem (motion, equation_of_motion, free_fall)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	for _, qf := range quantityFlags {
		solveCmd.Flags().Float64Var(qf.dst, qf.name,
			0, fmt.Sprintf("%s (%s)", kinematics.Label(qf.q), kinematics.Unit(qf.q)))
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list past calculations",
		RunE:  runHistory,
	}
	historyCmd.Flags().IntVar(&limit, "limit", 0, "show only the most recent N entries")

	plotCmd := &cobra.Command{
		Use:   "plot [quantity]",
		Short: "plot a quantity across history entries",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the history log as JSON",
		RunE:  runExport,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "clear calculation history",
		RunE:  runClear,
	}
	clearCmd.Flags().BoolVar(&skipConfirm, "yes", false, "skip confirmation")

	topicsCmd := &cobra.Command{
		Use:   "topics",
		Short: "list solvable topics",
		RunE:  runTopics,
	}

	rootCmd.AddCommand(solveCmd, historyCmd, plotCmd, exportCmd, clearCmd, topicsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// effectiveConfig layers the optional yaml file and flags over env.
func effectiveConfig() {
	if configFile != "" {
		if err := config.Load(configFile, cfg); err != nil {
			log.Printf("warning: could not load config file: %v", err)
		}
	}
	if historyFile != "" {
		cfg.HistoryFile = historyFile
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = config.DefaultHistoryFile
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = config.DefaultHistoryLimit
	}
}

func openLog() *history.Log {
	effectiveConfig()
	return history.Open(cfg.HistoryFile)
}

func runSolve(cmd *cobra.Command, args []string) error {
	topic := args[0]

	registry := kinematics.NewRegistry()
	rule, err := registry.Get(topic)
	if err != nil {
		return fmt.Errorf("%v (available: %s)", err, strings.Join(registry.Topics(), ", "))
	}

	in := kinematics.NewInputSet(rule.Quantities()...)
	for _, qf := range quantityFlags {
		if cmd.Flags().Changed(qf.name) {
			in.Set(qf.q, *qf.dst)
		}
	}

	lg := openLog()
	calc := calculator.New(registry, lg)

	res, err := calc.Solve(topic, in)
	if err != nil {
		return err
	}

	if res.Formula != "" {
		fmt.Printf("formula: %s\n", res.Formula)
	}
	for _, q := range rule.Quantities() {
		if v, ok := res.Values[q]; ok {
			fmt.Printf("%s: %.2f %s\n", kinematics.Label(q), v, kinematics.Unit(q))
		}
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	lg := openLog()
	entries := lg.Tail(limit)
	if len(entries) == 0 {
		fmt.Println("no calculation history")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTOPIC\tFORMULA\tRESULTS")
	for _, e := range entries {
		formula := ""
		parts := make([]string, 0, len(e.Results))
		for name, v := range e.Results {
			if name == "formula" {
				formula, _ = v.(string)
				continue
			}
			if f, ok := v.(float64); ok {
				parts = append(parts, fmt.Sprintf("%s=%.2f", name, f))
			}
		}
		sort.Strings(parts)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Timestamp, e.Topic, formula, strings.Join(parts, " "))
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	quantity := args[0]

	lg := openLog()
	var data []float64
	for _, e := range lg.Entries() {
		if v, ok := e.Results[quantity].(float64); ok {
			data = append(data, v)
			continue
		}
		if v, ok := e.Inputs[quantity]; ok && v != nil {
			data = append(data, *v)
		}
	}
	if len(data) == 0 {
		return fmt.Errorf("no history values for quantity: %s", quantity)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s over %d calculations", quantity, len(data))),
	)
	fmt.Println(graph)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	lg := openLog()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(lg.Entries())
}

func runClear(cmd *cobra.Command, args []string) error {
	lg := openLog()
	if !skipConfirm {
		fmt.Printf("clear %d history entries? type yes to confirm: ", lg.Len())
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(line), "yes") {
			fmt.Println("history not cleared")
			return nil
		}
	}
	if err := lg.Clear(); err != nil {
		return err
	}
	fmt.Println("history cleared")
	return nil
}

func runTopics(cmd *cobra.Command, args []string) error {
	registry := kinematics.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOPIC\tTITLE\tQUANTITIES\tFORMULAS")
	for _, topic := range registry.Topics() {
		rule, err := registry.Get(topic)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(rule.Quantities()))
		for _, q := range rule.Quantities() {
			names = append(names, string(q))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			topic, rule.Title(), strings.Join(names, ","), strings.Join(rule.Formulas(), "  "))
	}
	return w.Flush()
}
