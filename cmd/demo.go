package cmd

import (
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/chatkit/internal/app"
	"github.com/zhubert/chatkit/internal/clipboard"
	"github.com/zhubert/chatkit/internal/demo"
	"github.com/zhubert/chatkit/internal/demo/scenarios"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play scripted chat scenarios",
	Long: `Play scripted chat scenarios for documentation and presentations.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print its frames
  cast      - Generate an asciinema cast file
  live      - Start the chat with the two-sender layout`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		listScenarios(cmd.OutOrStdout())
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print its frames",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Generate an asciinema cast file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

var demoLiveCmd = &cobra.Command{
	Use:   "live",
	Short: "Start the chat with User A and User B; tab switches sender",
	Args:  cobra.NoArgs,
	RunE:  runDemoLive,
}

func init() {
	for _, cmd := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		cmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file")
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (scenario default if unset)")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (scenario default if unset)")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	}

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	demoCmd.AddCommand(demoCastCmd)
	demoCmd.AddCommand(demoLiveCmd)
	rootCmd.AddCommand(demoCmd)
}

func listScenarios(w io.Writer) {
	fmt.Fprintln(w, "Available demo scenarios:")
	fmt.Fprintln(w)
	for _, s := range scenarios.All() {
		fmt.Fprintf(w, "  %-15s %s\n", s.Name, s.Description)
	}
}

func getScenario(name string) (*demo.Scenario, error) {
	found := scenarios.Get(name)
	if found == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'chatkit demo list' to see available scenarios", name)
	}

	// Copy so size overrides do not leak into the shared scenario.
	scenario := *found
	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}
	return &scenario, nil
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	return demo.NewExecutor(execCfg).Run(scenario)
}

// outputWriter opens path, or returns stdout when path is empty.
func outputWriter(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating output file: %w", err)
	}
	return f, f.Close, nil
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	w, closeFn, err := outputWriter(cmd, demoOutput)
	if err != nil {
		return err
	}
	defer closeFn()

	fmt.Fprintf(w, "Captured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		fmt.Fprintln(w, f.Content)
	}
	return nil
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	name := args[0]
	scenario, err := getScenario(name)
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	outputFile := demoOutput
	if outputFile == "" {
		outputFile = name + ".cast"
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if err := demo.GenerateASCIICast(f, frames, scenario.Width, scenario.Height, scenario.Description); err != nil {
		return fmt.Errorf("error generating cast file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play with: asciinema play %s\n", outputFile)
	return nil
}

func runDemoLive(cmd *cobra.Command, args []string) error {
	m := app.New(app.Options{
		Title:     "chatkit demo",
		Seats:     scenarios.TwoSeats(),
		Clipboard: clipboard.NewReader(nil),
	})
	defer m.Close()

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
