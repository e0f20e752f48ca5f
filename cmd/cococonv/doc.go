// Package main hosts the cococonv CLI.
//
// The Cobra command tree exposes one subcommand per dataset converter plus
// configuration scaffolding. Configuration, logging and progress rendering
// are resolved once in commandContext; the conversion itself lives in
// internal/tracking and internal/posetrack.
package main
