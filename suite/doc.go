// Package suite runs a catalogue of adjoint cases, each on its literal sample
// and on a batch of random samples, concurrently and deterministically.
//
// ⚙️ Usage:
//
//	cfg, err := suite.LoadConfig("adjcheck.yaml") // or suite.DefaultConfig()
//	reports, err := suite.Run(ctx, operators.Cases(), cfg, logger)
//
// Every case gets its own random source seeded with Seed plus the case's
// position in the catalogue, so a run is reproducible whatever the
// scheduling and whatever subset Only selects.
package suite
