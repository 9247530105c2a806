// Package app is the application layer: the only package that references
// multiple pipeline components. It owns the ingest path and the report entry
// points exposed to the chat command layer and the scheduler.
package app
