// Package dom is a typed object model for SED-ML documents.
//
// A Document owns its models, simulations, tasks, data generators and
// outputs. Children are created through Create* methods on their parent,
// which append the child and record the parent pointer. Elements refer
// to each other by id (a task names a model and a simulation, a curve
// names two data generators); these references are not checked at
// construction time, see package validate.
package dom
