// Package bundle assembles one immutable data snapshot per refresh cycle:
// it fetches every configured source concurrently, normalizes each table,
// and publishes the result atomically so consumers never observe a mix of
// old and new data.
package bundle

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhancoach/mundial-stats/internal/logging"
	"github.com/jhancoach/mundial-stats/internal/model"
	"github.com/jhancoach/mundial-stats/internal/schema"
	"github.com/jhancoach/mundial-stats/internal/source"
	"github.com/jhancoach/mundial-stats/internal/tabular"
)

// TextFetcher retrieves the raw text of one source location.
type TextFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// Assembler builds data bundles from configured source locations.
type Assembler struct {
	fetcher TextFetcher
}

// NewAssembler builds an Assembler on top of a fetcher.
func NewAssembler(fetcher TextFetcher) *Assembler {
	return &Assembler{fetcher: fetcher}
}

// Assemble fetches every dataset concurrently, waits for all fetches to
// settle, then normalizes and assembles a complete Bundle. If any fetch
// fails the whole refresh degrades to an empty bundle: all tables empty,
// Loading false, zero LastUpdated. Assemble never returns an error.
func (a *Assembler) Assemble(ctx context.Context, locs source.Locations) *model.Bundle {
	logger := logging.Logger()
	start := time.Now()

	datasets := source.All()
	texts := make([]string, len(datasets))
	errs := make([]error, len(datasets))

	var wg sync.WaitGroup
	for i, ds := range datasets {
		wg.Add(1)
		go func(i int, ds source.Dataset) {
			defer wg.Done()
			texts[i], errs[i] = a.fetcher.FetchText(ctx, locs[ds])
		}(i, ds)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			logger.Warnf("refresh aborted, source %s failed: %v", datasets[i], err)
			return model.Empty()
		}
	}

	tables := make(map[source.Dataset]tabular.Table, len(datasets))
	for i, ds := range datasets {
		t := tabular.ParseCSV(texts[i])
		if t.FallbackRows > 0 {
			logger.Warnf("source %s: %d rows parsed via naive delimiter fallback", ds, t.FallbackRows)
		}
		tables[ds] = t
	}

	b := &model.Bundle{
		RefreshID:   uuid.New(),
		Details:     schema.NormalizeDetails(tables[source.DatasetDetails]),
		KillFeed:    schema.NormalizeKillFeed(tables[source.DatasetKillFeed]),
		PlayerStats: schema.NormalizePlayerStats(tables[source.DatasetPlayerStats]),
		Loadouts:    schema.NormalizeLoadouts(tables[source.DatasetLoadouts]),
		Teams:       schema.NormalizeTeamRefs(tables[source.DatasetTeamRefs]),
		Weapons:     schema.NormalizeWeaponRefs(tables[source.DatasetWeaponRefs]),
		Safes:       schema.NormalizeSafeRefs(tables[source.DatasetSafeRefs]),
		Pets:        schema.NormalizeDimension(tables[source.DatasetPetRefs], "Pet"),
		Items:       schema.NormalizeDimension(tables[source.DatasetItemRefs], "Item"),
		LastUpdated: time.Now(),
	}

	abilityDatasets := [model.AbilitySlots]source.Dataset{
		source.DatasetAbility1, source.DatasetAbility2,
		source.DatasetAbility3, source.DatasetAbility4,
	}
	abilityKeys := [model.AbilitySlots]string{"Hab1", "Hab2", "Hab3", "Hab4"}
	for i := range abilityDatasets {
		b.Abilities[i] = schema.NormalizeDimension(tables[abilityDatasets[i]], abilityKeys[i])
	}

	logger.Infof("assembled bundle %s in %v: %d details, %d kills, %d player rows, %d loadouts",
		b.RefreshID, time.Since(start), len(b.Details), len(b.KillFeed), len(b.PlayerStats), len(b.Loadouts))

	return b
}
