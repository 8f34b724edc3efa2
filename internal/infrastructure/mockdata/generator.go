// Package mockdata synthesizes market snapshots for the dashboard.
package mockdata

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	market "marketboard/internal/domain/entity/market"

	"github.com/shopspring/decimal"
)

var ErrGenerationFailure = errors.New("company generation failed")

const fillerSymbolFormat = "TICK%03d"

// profile bounds the uniform draws for one kind of company.
type profile struct {
	minPrice, maxPrice         float64
	minVolume, maxVolume       float64
	minCapFactor, maxCapFactor float64
}

var (
	seedProfile = profile{
		minPrice: 20, maxPrice: 200,
		minVolume: 1_000_000, maxVolume: 10_000_000,
		minCapFactor: 10_000_000, maxCapFactor: 100_000_000,
	}
	fillerProfile = profile{
		minPrice: 10, maxPrice: 100,
		minVolume: 100_000, maxVolume: 10_000_000,
		minCapFactor: 1_000_000, maxCapFactor: 10_000_000,
	}
)

const maxVariation = 5.0

// Params configures a Generator. Unset fields other than Rand get defaults.
type Params struct {
	// Seeds are always included in a batch, in addition to fillers.
	//
	// Defaults to DefaultSeeds() when nil. A non-nil empty slice
	// is kept as is.
	Seeds []market.Listing
	// Vocabulary defaults to DefaultVocabulary() when all lists are nil.
	Vocabulary Vocabulary
	// Rand is the random source. Generation fails without one.
	Rand *rand.Rand
	// Now stamps LastUpdate. Defaults to time.Now.
	Now func() time.Time
}

// Generator builds company batches from a seed list and filler names.
//
// The only state it keeps is its random source, which is guarded so a
// Generator can be shared.
type Generator struct {
	p   Params
	mtx sync.Mutex
}

// NewGenerator returns a Generator with defaults filled in for unset Params.
func NewGenerator(p Params) *Generator {
	if p.Seeds == nil {
		p.Seeds = DefaultSeeds()
	}
	if p.Vocabulary.isZero() {
		p.Vocabulary = DefaultVocabulary()
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	return &Generator{p: p}
}

// NewSeededGenerator returns a Generator with the default lists and a
// PCG source seeded with seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(Params{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
}

// Generate returns max(targetCount, len(seeds)) companies sorted by volume,
// highest first. Negative counts are treated as zero.
func (g *Generator) Generate(targetCount int) ([]market.Company, error) {
	if targetCount < 0 {
		targetCount = 0
	}
	if g.p.Rand == nil {
		return nil, fmt.Errorf("%w: random source is not set", ErrGenerationFailure)
	}
	if len(g.p.Seeds) == 0 && targetCount > 0 {
		return nil, fmt.Errorf("%w: seed list is empty", ErrGenerationFailure)
	}
	if targetCount > len(g.p.Seeds) {
		if err := g.p.Vocabulary.validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrGenerationFailure, err)
		}
	}

	g.mtx.Lock()
	defer g.mtx.Unlock()

	now := g.p.Now().UTC()
	size := max(targetCount, len(g.p.Seeds))
	companies := make([]market.Company, 0, size)
	seen := make(map[string]struct{}, size)

	for i, seed := range g.p.Seeds {
		if err := validateListing(seed); err != nil {
			return nil, fmt.Errorf("%w: seed %d: %w", ErrGenerationFailure, i, err)
		}
		if _, dup := seen[seed.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %s", ErrGenerationFailure, seed.Symbol)
		}
		seen[seed.Symbol] = struct{}{}
		companies = append(companies, g.synthesize(seed, seedProfile, now))
	}

	for n := 1; len(companies) < targetCount; n++ {
		listing := g.fillerListing(n)
		if _, dup := seen[listing.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %s", ErrGenerationFailure, listing.Symbol)
		}
		seen[listing.Symbol] = struct{}{}
		companies = append(companies, g.synthesize(listing, fillerProfile, now))
	}

	slices.SortStableFunc(companies, func(a, b market.Company) int {
		return cmp.Compare(b.Volume, a.Volume)
	})
	return companies, nil
}

func (g *Generator) synthesize(l market.Listing, p profile, now time.Time) market.Company {
	basePrice := g.uniform(p.minPrice, p.maxPrice)
	variation := g.uniform(-maxVariation, maxVariation)
	volume := g.uniform(p.minVolume, p.maxVolume)
	capFactor := g.uniform(p.minCapFactor, p.maxCapFactor)

	// The drawn price opens the session and the variation moves it.
	// Truncating keeps the opening price inside the drawn range.
	opening := decimal.NewFromFloat(basePrice).Truncate(2)
	change := decimal.NewFromFloat(variation).Round(2)
	price := opening.Add(change)

	return market.Company{
		ID:           l.Symbol,
		Name:         l.Name,
		Symbol:       l.Symbol,
		Sector:       l.Sector,
		CurrentPrice: price.InexactFloat64(),
		Change: market.PriceChange{
			Value:      change.InexactFloat64(),
			Percentage: changePercentage(price, change).InexactFloat64(),
		},
		Volume:     int64(math.Floor(volume)),
		MarketCap:  int64(math.Floor(basePrice * capFactor)),
		LastUpdate: now,
	}
}

func (g *Generator) fillerListing(n int) market.Listing {
	v := g.p.Vocabulary
	prefix := v.Prefixes[g.p.Rand.IntN(len(v.Prefixes))]
	sector := v.Sectors[g.p.Rand.IntN(len(v.Sectors))]
	suffix := v.Suffixes[g.p.Rand.IntN(len(v.Suffixes))]
	return market.Listing{
		Name:   prefix + " " + sector + " " + suffix,
		Symbol: fmt.Sprintf(fillerSymbolFormat, n),
		Sector: sector,
	}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.p.Rand.Float64()*(hi-lo)
}

// changePercentage relates change to the opening price (price - change).
// A zero opening price has no meaningful percentage and yields zero.
func changePercentage(price, change decimal.Decimal) decimal.Decimal {
	opening := price.Sub(change)
	if opening.IsZero() {
		return decimal.Zero
	}
	return change.Div(opening).Mul(decimal.NewFromInt(100)).Round(2)
}

func validateListing(l market.Listing) error {
	switch {
	case strings.TrimSpace(l.Name) == "":
		return errors.New("name is empty")
	case strings.TrimSpace(l.Symbol) == "":
		return errors.New("symbol is empty")
	case strings.TrimSpace(l.Sector) == "":
		return errors.New("sector is empty")
	}
	return nil
}

func (v Vocabulary) validate() error {
	switch {
	case len(v.Prefixes) == 0:
		return errors.New("name prefixes are empty")
	case len(v.Sectors) == 0:
		return errors.New("sectors are empty")
	case len(v.Suffixes) == 0:
		return errors.New("name suffixes are empty")
	}
	return nil
}
