// Package main provides the CLI entrypoint for raceday.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"chosenoffset.com/raceday/internal/assets"
	"chosenoffset.com/raceday/internal/config"
	"chosenoffset.com/raceday/internal/game"
	"chosenoffset.com/raceday/internal/race"
	ebitenrender "chosenoffset.com/raceday/internal/render/ebiten"
	"chosenoffset.com/raceday/internal/telemetry"
	"chosenoffset.com/raceday/internal/ui/menu"
	"chosenoffset.com/raceday/internal/vehicle"
)

var (
	configPath string
	assetsDir  string
	carFlag    string
	trackFlag  string
	controlArg string

	simScript string
	simFPS    int
	simEvery  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "raceday",
		Short:         "Top-down arcade racer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGameCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&carFlag, "car", "", "preselected car (car1-car4)")
	rootCmd.PersistentFlags().StringVar(&trackFlag, "track", "", "preselected track (track1-track4)")
	rootCmd.Flags().StringVar(&assetsDir, "assets", "", "asset directory (overrides config)")
	rootCmd.Flags().StringVar(&controlArg, "control", "", "control scheme: keyboard or controller")

	rootCmd.AddCommand(newCarsCmd())
	rootCmd.AddCommand(newSimCmd())

	return rootCmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// selections parses the --car and --track flags.
func selections() (vehicle.CarClass, race.Track, error) {
	car, err := vehicle.ParseCarClass(carFlag)
	if err != nil {
		return vehicle.CarUnset, race.TrackNone, err
	}
	track, err := race.ParseTrack(trackFlag)
	if err != nil {
		return vehicle.CarUnset, race.TrackNone, err
	}
	return car, track, nil
}

func runGameCmd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if assetsDir != "" {
		cfg.Assets.Dir = assetsDir
	}
	if controlArg != "" {
		cfg.Controls.Scheme = controlArg
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	car, track, err := selections()
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	store := assets.NewStore(cfg.Assets.Dir, loader, cfg.TrackFiles())
	defer store.Release()

	data := game.NewData(cfg.Window.Width, cfg.Window.Height)
	data.SelectedCar = car
	data.SelectedTrack = track
	data.SelectedControl = cfg.ControlScheme()

	ctx := &game.Context{
		Data:     data,
		Renderer: renderer,
		Input:    inputMgr,
		Assets:   store,
		Model:    cfg.Model(),
		Catalog:  catalog,
		Starts:   cfg.TrackStarts(),
	}

	gameManager, err := game.NewManager(ctx, menu.NewMainMenu())
	if err != nil {
		return err
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	return engine.RunGame(gameManager)
}

func newCarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cars",
		Short: "Print the car tuning catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			telemetry.WriteCatalog(cmd.OutOrStdout(), catalog)
			return nil
		},
	}
}

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Drive a scripted race without a window and print telemetry",
		Args:  cobra.NoArgs,
		RunE:  runSimCmd,
	}
	cmd.Flags().StringVar(&simScript, "script", "accel:60,accel+right:60,coast:60,brake:30", "inputs as input:frames pairs")
	cmd.Flags().IntVar(&simFPS, "fps", 60, "simulated frames per second")
	cmd.Flags().IntVar(&simEvery, "every", 15, "print every n-th frame")
	return cmd
}

func runSimCmd(cmd *cobra.Command, _ []string) error {
	if simFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", simFPS)
	}
	script, err := telemetry.ParseScript(simScript)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	car, track, err := selections()
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	session := race.NewSession(cfg.Model(), catalog, cfg.TrackStarts())
	session.Enter(car, track)

	samples := telemetry.Run(session, script, 1/float64(simFPS), simEvery)
	fmt.Fprintf(cmd.OutOrStdout(), "%s on %s, %d frames at %d fps\n", session.Car().Label(), session.Track(), script.Frames(), simFPS)
	telemetry.WriteSamples(cmd.OutOrStdout(), samples)
	return nil
}

