// Package tablescrub cleans and validates semi-structured tabular data
// before downstream storage and analysis.
//
// A chunk of records is loaded as a table of untyped string columns.
// Per-column rules then run in two phases: mandatory fields whose
// failures exclude the whole row (hard rejects), and optional fields
// whose failures null the single value in place while the original is
// preserved in a shadow "_orig" column (soft rejects). Validated
// fields may be post-processed and may derive new columns, such as
// splitting a coordinate pair into latitude and longitude.
//
// Scrub is the entry point. It is a pure function of the input table
// and the ruleset: re-running it on the same chunk yields identical
// clean data and reject reports.
//
//	tbl, err := tablescrub.LoadChunk("crimes_001.csv")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := tablescrub.Scrub(tbl, "crimes_001.csv", tablescrub.ChicagoCrimeRuleset())
//	if err != nil {
//		log.Fatal(err)
//	}
//	// result.Clean, result.HardRejects, result.SoftRejects
package tablescrub
