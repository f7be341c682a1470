// Package venues maintains the registry of publication venues and the
// mapping from volumes to the venues they appeared at.
//
// The registry is loaded from a single YAML file keyed by venue code. Legacy
// collections are matched through their one-letter prefix; joint proceedings
// name additional venue codes in their volume attributes. Volumes register
// themselves during construction, so the index accumulates volume IDs in
// load order.
package venues
