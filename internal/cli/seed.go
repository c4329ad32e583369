package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/lonamusi/trending-collections/internal/config"
	"github.com/lonamusi/trending-collections/internal/database"
	"github.com/lonamusi/trending-collections/internal/database/trends"
	"github.com/lonamusi/trending-collections/internal/entities"
)

// sampleTrends is the bundled demo data set loaded by the seed command.
var sampleTrends = []entities.Trend{
	{
		OriginalQuery:       "Socks for Men",
		TrendTopic:          "Star Wars Argyle",
		Description:         "Navy argyle stripe pattern inspired by iconic Star Wars characters.",
		ReformulatedQueries: "Men's Star Wars Argyle Socks, Navy Argyle Socks Inspired by Star Wars, Star Wars Character Navy Argyle Socks, Darth Vader Navy Argyle Socks",
		Category:            strPtr("Movie Theme"),
	},
	{
		OriginalQuery:       "Socks for Men",
		TrendTopic:          "Superhero Ankle",
		Description:         "White ankle socks featuring symbols of popular superheroes.",
		ReformulatedQueries: "White Ankle Socks Superman, Men's Ankle Socks Marvel, DC Ankle Socks For Men, Batman White Ankle Socks",
		Category:            strPtr("Superhero Theme"),
	},
	{
		OriginalQuery:       "Shoes for Women",
		TrendTopic:          "Ballet Flats",
		Description:         "Comfortable ballet flats with memory foam for everyday wear.",
		ReformulatedQueries: "Memory Foam Ballet Flats, Comfortable Women's Flats, Daily Wear Ballet Shoes, Cushioned Ballet Shoes",
		Category:            strPtr("Comfort Footwear"),
	},
	{
		OriginalQuery:       "Running Shoes",
		TrendTopic:          "Neon Trainers",
		Description:         "High-visibility neon running shoes for safety and style.",
		ReformulatedQueries: "Neon Yellow Running Shoes, Bright Orange Trainers, High Visibility Running Footwear, Fluorescent Training Shoes",
		Category:            strPtr("Athletic Wear"),
	},
	{
		OriginalQuery:       "Winter Boots",
		TrendTopic:          "Faux Fur Lined",
		Description:         "Warm winter boots with faux fur lining and waterproof exterior.",
		ReformulatedQueries: "Fur Lined Snow Boots, Warm Winter Footwear, Waterproof Fur Boots, Cozy Winter Boots",
		Category:            strPtr("Winter Wear"),
	},
	{
		OriginalQuery:       "Dress Shoes",
		TrendTopic:          "Vintage Oxfords",
		Description:         "Classic oxford shoes with vintage-inspired detailing.",
		ReformulatedQueries: "Retro Oxford Shoes, Classic Dress Oxfords, Vintage Style Formal Shoes, Traditional Oxford Footwear",
		Category:            strPtr("Formal Wear"),
	},
}

func strPtr(s string) *string { return &s }

// SeedCommand loads sample trend records into the store.
type SeedCommand struct {
	DatabasePath string
	FilePath     string
	Force        bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.FilePath, "file", "", "JSON file with trend records (defaults to the bundled sample set)")
	fs.BoolVar(&cmd.Force, "force", false, "Seed even when trend records already exist")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate the database with sample trending collections.\n")
		fmt.Fprintf(os.Stderr, "Does nothing when records already exist unless -force is given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := trends.NewRepository(db.DB)

	if !cmd.Force {
		count, err := repo.Count()
		if err != nil {
			return fmt.Errorf("failed to count trends: %w", err)
		}
		if count > 0 {
			fmt.Printf("Database already contains %d trend(s), skipping seed (use -force to override)\n", count)
			return nil
		}
	}

	records := sampleTrends
	if cmd.FilePath != "" {
		records, err = loadTrendsFile(cmd.FilePath)
		if err != nil {
			return err
		}
	}

	for i := range records {
		records[i].ID = 0
		if err := repo.Create(&records[i]); err != nil {
			return fmt.Errorf("failed to insert trend %q: %w", records[i].TrendTopic, err)
		}
	}

	fmt.Printf("Seeded %d trend(s)\n", len(records))
	return nil
}

func loadTrendsFile(path string) ([]entities.Trend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var records []entities.Trend
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}
