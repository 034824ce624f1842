// Package seed implements the CLI command that loads JSON fixtures into the
// document store. It stands in for the admin-side data entry the API itself
// does not expose.
package seed

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/cleantech-forge/helio/internal/cmd/base"
	"github.com/cleantech-forge/helio/internal/config"
	"github.com/cleantech-forge/helio/pkg/models"
	"github.com/cleantech-forge/helio/pkg/store"
)

const seedTimeout = 30 * time.Second

// Fixtures maps collection names to the documents to insert.
type Fixtures map[string][]map[string]any

type Command struct {
	*base.Command

	flagConfig string
	flagFile   string
}

func (c *Command) Synopsis() string {
	return "Load JSON fixtures into the document store"
}

func (c *Command) Help() string {
	return `Usage: helio seed -file=fixtures.json [options]

  Validate and insert fixture documents into the configured document store.
  The fixture file maps collection names to arrays of documents:

    {"energyproduct": [{"name": "...", "sector": "solar", ...}]}

Options:

  -config=<path>
      Path to an HCL configuration file.

  -file=<path>
      Path to the JSON fixture file (required).
`
}

func (c *Command) Flags() *flag.FlagSet {
	f := flag.NewFlagSet("seed", flag.ContinueOnError)
	f.StringVar(&c.flagConfig, "config", "", "path to an HCL configuration file")
	f.StringVar(&c.flagFile, "file", "", "path to the JSON fixture file")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagFile == "" {
		c.UI.Error("the -file flag is required")
		return 1
	}

	cfg, err := config.NewConfig(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}
	if !cfg.HasDatabase() {
		c.UI.Error("a configured database is required to seed")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	st, err := store.NewMongoStore(ctx, cfg.Database.URL, cfg.Database.Name)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting to document store: %v", err))
		return 1
	}
	defer st.Close(ctx)

	fixtures, err := LoadFixtures(afero.NewOsFs(), c.flagFile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading fixtures: %v", err))
		return 1
	}

	inserted, err := Seed(ctx, st, fixtures)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error seeding: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Seeded %d documents", inserted))
	return 0
}

// LoadFixtures reads and parses a fixture file from the given filesystem.
func LoadFixtures(fs afero.Fs, path string) (Fixtures, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading fixture file: %w", err)
	}

	var fixtures Fixtures
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("error parsing fixture file: %w", err)
	}

	return fixtures, nil
}

// Seed validates every fixture document against its collection's schema and
// inserts the valid set. Any invalid document aborts the run before anything
// is written.
func Seed(ctx context.Context, st store.Store, fixtures Fixtures) (int, error) {
	for collection, docs := range fixtures {
		for i, doc := range docs {
			if err := validateDocument(collection, doc); err != nil {
				return 0, fmt.Errorf(
					"invalid document %d in collection %q: %w", i, collection, err)
			}
		}
	}

	inserted := 0
	for collection, docs := range fixtures {
		for _, doc := range docs {
			if _, err := st.CreateDocument(ctx, collection, store.Document(doc)); err != nil {
				return inserted, fmt.Errorf(
					"error inserting into collection %q: %w", collection, err)
			}
			inserted++
		}
	}

	return inserted, nil
}

func validateDocument(collection string, doc map[string]any) error {
	var err error
	switch collection {
	case models.CollectionEnergyProducts:
		_, err = models.EnergyProductFromDocument(doc)
	case models.CollectionImpactStories:
		_, err = models.ImpactStoryFromDocument(doc)
	case models.CollectionOffices:
		_, err = models.OfficeFromDocument(doc)
	case models.CollectionInquiries:
		_, err = models.InquiryFromDocument(doc)
	default:
		err = fmt.Errorf("unknown collection %q", collection)
	}
	return err
}
