// Package frequency holds reference letter-frequency tables and the
// chi-squared scorer that compares a text against them.
//
// A Table is immutable once built. The built-in English table is created once
// per process and may be shared freely between goroutines:
//
//	table := frequency.English()
//	score := table.ChiSquared("Wkh txlfn eurzq ira") // lower is closer to English
//
// Custom tables can be loaded from YAML:
//
//	language: english
//	frequencies:
//	  a: 0.08167
//	  b: 0.01492
//	  ...
//
//	table, err := frequency.LoadYAML(ctx, f)
package frequency
