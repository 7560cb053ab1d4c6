// Package streams builds push-based dataflow graphs: sources emit tagged
// events through composable operator nodes to callbacks bound at the leaves.
//
// A graph is constructed cold. Nothing flows until a node is started, and
// starting a node subscribes it to its parents before the parents start, so
// even a source that emits synchronously during start cannot be missed.
// Emission is a plain call chain: every subscriber runs on the emitting
// goroutine, in subscription order. Only the parallel combinators
// (SelectParallel, AggregateParallel, Await) introduce goroutines, and for
// those output order follows completion order.
//
// Below is an application reading temperature samples, smoothing them over a
// sliding window and reacting to the result:
//
//	package thermo
//
//	import (
//		"log/slog"
//
//		"github.com/bassclefstudio/streams"
//		"github.com/bassclefstudio/streams/sources"
//	)
//
//	// Monitor emits a smoothed reading for every sample past the second
//	// and logs transform failures without stopping the flow.
//	func Monitor(samples []float64) {
//		src := sources.FromSlice(samples)
//
//		valid := streams.Where(src, func(v float64) (bool, error) {
//			return v > -40 && v < 125, nil
//		})
//		smooth := streams.Window(valid, 3, func(window []float64) (float64, error) {
//			total := 0.0
//			for _, v := range window {
//				total += v
//			}
//			return total / float64(len(window)), nil
//		})
//
//		streams.BindError(smooth, func(err error) {
//			slog.Error("smoothing failed", slog.Any("err", err))
//		}, streams.Params{DeferStart: true})
//		streams.BindResult(smooth, func(v float64) {
//			slog.Info("smoothed sample", slog.Float64("celsius", v))
//		})
//	}
//
// BindResult starts the whole upstream graph by default; the error callback
// is bound first with DeferStart so it is already subscribed when the slice
// source replays its values.
//
// The subpackages hold the moving parts: nodes defines the operator set the
// combinators here wrap, events the tagged value and multicast emitter,
// sources and sinks the edges of a graph, properties the change-notification
// plumbing behind the Property combinators, and tasks the unit of
// asynchronous work consumed by Await.
package streams
