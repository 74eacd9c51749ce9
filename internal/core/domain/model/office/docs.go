// Package office contains the Office aggregate: a node of the three-tier
// post office hierarchy (sorting center > distribution hub > delivery
// office). Offices form the directory that the route planner sequences
// shipments through; they are immutable once created.
package office
