// Package loader registers the HTTP features of the service.
//
// A feature (inventory, supplier, reorder, integrity) owns its routes and
// dependencies and exposes them through the Feature interface. The start
// command registers each one with a Manager and calls LoadAll, which mounts
// the enabled features in registration order and returns their names for the
// startup log. Feature names must be unique.
package loader
