// Package summary prints a human readable overview of a SED-ML document:
// counts and per-item fields of its simulations, models, tasks, data
// generators and outputs.
package summary
