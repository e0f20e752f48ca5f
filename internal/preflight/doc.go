// Package preflight checks that the configured dataset and output
// directories are usable before a conversion starts.
//
// The CLI "cococonv check" command runs RunAll and renders the results;
// failures there mean a conversion would abort on its first file access.
package preflight
