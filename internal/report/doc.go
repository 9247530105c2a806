// Package report turns aggregate rows into renderable mood reports.
//
// Assembly (Build*) and presentation (Render) are separate pure steps: the
// builders produce an immutable Report holding only data, and Render maps it
// to a transport-agnostic Message the chat adapter can display. Neither step
// touches the store.
package report
