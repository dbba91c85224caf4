// Command pagerank crawls a directory of HTML pages and prints PageRank
// estimates from both estimators: the sampling random walk and the iterative
// fixed-point relaxation. The two are independent implementations of the same
// model; comparing their output on the same corpus is the point.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/pagerank/corpus"
	"github.com/katalvlaran/pagerank/crawl"
	"github.com/katalvlaran/pagerank/matrix"
	"github.com/katalvlaran/pagerank/rank"
)

var rootCmd = &cobra.Command{
	Use:   "pagerank <corpus-dir>",
	Short: "Estimate page importance in a hyperlink graph",
	Long: "pagerank reads every *.html file in the given directory, builds the\n" +
		"corpus of their cross-links, and prints two PageRank estimates:\n" +
		"a Monte-Carlo random walk and the converged fixed-point iteration.",
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.Float64("damping", rank.DefaultDamping, "damping factor, in (0,1) exclusive")
	flags.Int("samples", rank.DefaultSamples, "random-walk length for the sampling estimate")
	flags.Float64("threshold", rank.DefaultThreshold, "per-page convergence bound for the iteration")
	flags.Int("workers", 1, "goroutines per relaxation sweep")
	flags.Uint64("seed", 0, "random seed for the sampling walk (0 = wall clock)")
	flags.Bool("matrix", false, "also print the dense power-iteration estimate")
	rootCmd.PersistentFlags().String("config", "", "config file (default .pagerank.yaml)")

	_ = viper.BindPFlags(flags)
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".pagerank")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("PAGERANK")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func run(cmd *cobra.Command, args []string) error {
	c, err := crawl.Directory(args[0])
	if err != nil {
		return err
	}

	damping := viper.GetFloat64("damping")
	samples := viper.GetInt("samples")
	threshold := viper.GetFloat64("threshold")

	shared := []rank.Option{
		rank.WithDamping(damping),
		rank.WithThreshold(threshold),
		rank.WithWorkers(viper.GetInt("workers")),
	}

	sampleOpts := append([]rank.Option{rank.WithSamples(samples)}, shared...)
	if seed := viper.GetUint64("seed"); seed != 0 {
		sampleOpts = append(sampleOpts, rank.WithRandSource(rand.NewSource(seed)))
	}

	sampled, err := rank.Sample(c, sampleOpts...)
	if err != nil {
		return err
	}
	printRanks(cmd, fmt.Sprintf("PageRank Results from Sampling (n = %d)", samples), sampled)

	iterated, err := rank.Iterate(c, shared...)
	if err != nil {
		return err
	}
	printRanks(cmd, "PageRank Results from Iteration", iterated)

	if viper.GetBool("matrix") {
		dense, err := matrix.PowerIterate(c, damping, threshold, rank.DefaultMaxIterations)
		if err != nil {
			return err
		}
		printRanks(cmd, "PageRank Results from Power Iteration", dense)
	}

	return nil
}

// printRanks writes one estimate, pages sorted by name, four decimals.
func printRanks(cmd *cobra.Command, header string, ranks rank.Distribution) {
	pages := make([]corpus.Page, 0, len(ranks))
	for p := range ranks {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i] < pages[j] })

	fmt.Fprintln(cmd.OutOrStdout(), header)
	for _, p := range pages {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %.4f\n", p, ranks[p])
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
