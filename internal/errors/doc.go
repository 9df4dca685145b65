// Package errors provides the structured error type used at the edges of the simulator.
//
// The simulation core never fails: unknown disaster kinds, out-of-range intensities,
// missing buildings and out-of-range seeks are all corrected locally. Errors only
// appear where a caller hands us something we cannot correct, such as an invalid
// dependency config, an unknown session, an unsupported playback speed, or a
// storage failure.
//
// # Basic Usage
//
//	err := errors.NotFound("session not found").WithMeta("session_id", id)
//	err := errors.InvalidArgumentf("unsupported speed: %v", speed)
//
// Wrapping keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save session snapshot")
//	}
//
// # Validation
//
// Dependency configs validate themselves with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Clock == nil {
//	    vb.RequiredField("Clock")
//	}
//	return vb.Build()
//
// # Layers
//
// Repository layer returns NotFound for missing keys and wraps storage errors.
// Orchestrator layer returns InvalidArgument for bad input and FailedPrecondition
// when a session is in a state that cannot accept the request.
// The CLI logs the code and message and exits non-zero.
package errors
