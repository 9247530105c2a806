// Package domain holds the core types and interfaces of the sentiment
// pipeline. It has no dependencies on adapters; every other package depends
// on it, never the other way around.
package domain
