package config

import (
	"fmt"

	"regionsynth/internal/gen"
	"regionsynth/internal/match"
	"regionsynth/internal/projection"
	"regionsynth/internal/region"
)

// CatalogConfig builds the projection catalog configuration.
func (f *File) CatalogConfig() (projection.CatalogConfig, error) {
	cfg := projection.CatalogConfig{Lookup: f.Wrapper.Lookup}

	for _, p := range f.Projections {
		category, ok := projection.ParseCategory(p.Category)
		if !ok {
			err := fmt.Errorf("projection %q: unknown category %q", p.Native, p.Category)
			if s, found := match.Suggest(p.Category, projection.CategoryNames()); found {
				err = fmt.Errorf("%w (did you mean %s?)", err, s)
			}

			return cfg, err
		}

		cfg.Extra = append(cfg.Extra, projection.Entry{
			Native:   p.Native,
			Wrapper:  p.Wrapper,
			Category: category,
		})
	}

	return cfg, nil
}

// GenOptions builds the generator options, including the projection catalog.
func (f *File) GenOptions() (gen.Options, error) {
	catalogConfig, err := f.CatalogConfig()
	if err != nil {
		return gen.Options{}, err
	}

	catalog, err := projection.NewCatalog(catalogConfig)
	if err != nil {
		return gen.Options{}, err
	}

	return gen.Options{
		Reader:  f.Serializer.Reader,
		Writer:  f.Serializer.Writer,
		Size:    f.Serializer.Size,
		SizeOf:  f.Serializer.SizeOf,
		Native:  f.Wrapper.Native,
		Notify:  f.Wrapper.Notify,
		Indent:  f.Indent,
		Catalog: catalog,
	}, nil
}

// EngineConfig returns the engine settings.
func (f *File) EngineConfig(dryRun bool) region.Config {
	return region.Config{
		CompanionExt: f.Companion,
		Indent:       f.Indent,
		DryRun:       dryRun,
		CacheSize:    max(f.CacheSize, 0),
	}
}

// NewEngine builds an engine with the built-in generators configured by f.
func (f *File) NewEngine(dryRun bool) (*region.Engine, error) {
	opts, err := f.GenOptions()
	if err != nil {
		return nil, err
	}

	return region.NewEngine(f.EngineConfig(dryRun), gen.NewRegistry(opts))
}
