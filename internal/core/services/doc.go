// Package services implements the driving port interfaces.
// Services contain the pipeline logic (colour rewriting, link chains,
// colour table construction) and orchestrate calls to driven ports.
//
// Services are pure Go with no external dependencies.
package services
