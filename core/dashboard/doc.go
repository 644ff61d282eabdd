// Package dashboard assembles the analytics of one date window into a View
// and keeps the latest View for the API and the CLI.
//
// Build is a plain function of its inputs. Service adds the mutable state
// around it: concurrent window changes are resolved last-write-wins, each
// stored View is announced on an event bus and every run is reported to the
// configured metrics sink.
package dashboard
