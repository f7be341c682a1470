// Package sigs maintains the registry of special interest groups and their
// sponsored meetings.
//
// Each SIG lives in its own YAML file under the configured directory. A
// meeting entry names the front-matter identifier of a sponsored volume;
// lookups are keyed by that identifier, which is how the archive has always
// recorded sponsorship.
package sigs
