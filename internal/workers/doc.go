// Package workers holds background executors shared by the client.
//
// Serial runs tasks one at a time on a single goroutine, which gives a
// resource such as the local product cache exactly one writer.
package workers
