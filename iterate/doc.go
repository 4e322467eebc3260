// Package iterate drives iterative algorithms one step at a time.
//
// An Algorithm supplies set-up, a single update, the objective at the current
// solution and the solution itself. The Driver owns everything around it:
//
//   - the iteration counter and the stop predicate (iteration ≥ max, or a
//     custom Stopper supplied by the algorithm);
//   - objective recording every RecordingInterval iterations, starting with
//     iteration 0 (interval 0 disables recording);
//   - per-update wall-clock timing through an injectable Clock;
//   - structured logging with log/slog, every record tagged with a run id;
//   - Run, which steps a bounded number of times, invokes a callback on
//     recorded iterations and optionally writes a tabulated progress report.
//
// A Driver is resumable: raise the bound with SetMaxIterations and call
// Advance or Run again. A Driver is not safe for concurrent use.
//
// Step order inside Advance:
//
//  1. unconfigured driver → ErrNotConfigured (checked before anything else);
//  2. stop predicate holds → (false, nil), nothing changes;
//  3. Update, timed;
//  4. UpdateObjective on recording iterations;
//  5. counter increment, then UpdatePreviousSolution when implemented.
package iterate
