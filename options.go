package scantab

import "github.com/tsawler/scantab/tables"

// ExtractOptions holds configuration for the extraction pipeline.
type ExtractOptions struct {
	// Table detection
	detectTables     bool
	padding          int
	upscaleFactor    float64
	typeLabel        string
	sortReadingOrder bool

	// Quality validation
	minTableRows int
	categories   []tables.Category
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	detect := tables.DefaultConfig()
	return ExtractOptions{
		detectTables:  true,
		padding:       detect.Padding,
		upscaleFactor: detect.UpscaleFactor,
		typeLabel:     detect.TypeLabel,
		minTableRows:  tables.DefaultMinRows,
		categories:    nil, // nil means classifier defaults
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	if o.categories != nil {
		newOpts.categories = make([]tables.Category, len(o.categories))
		copy(newOpts.categories, o.categories)
	}

	return newOpts
}

// detectorConfig converts the options into a detector configuration.
func (o ExtractOptions) detectorConfig() tables.Config {
	return tables.Config{
		Padding:          o.padding,
		UpscaleFactor:    o.upscaleFactor,
		TypeLabel:        o.typeLabel,
		SortReadingOrder: o.sortReadingOrder,
	}
}
