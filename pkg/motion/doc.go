// Package motion exposes the command surface of one motor amplifier:
// positioning, velocity limits, microstepping and persisting settings.
//
// A Controller owns a session.Session and a register.Map. Symbolic
// parameters are resolved through the map and read or written with
// package regio:
//
//	ctrl, err := motion.NewFromProfile("axis1.profile", motion.Config{Host: "10.0.0.5"})
//	if err != nil {
//		return err
//	}
//	defer ctrl.Close()
//
//	if err := ctrl.Connect(ctx); err != nil {
//		return err
//	}
//	ctrl.SetMaxVelocity(ctx, 1200)
//	ctrl.SetAbsolutePosition(ctx, 51200)
//
// # Failure policy
//
// The plain getters (CurrentPosition, IsMoving, ...) return zero or false
// when the read fails, which is indistinguishable from a genuine zero. The
// failure is still logged. Callers that must tell the two apart use the
// Read* variants, which return the error.
//
// A Controller is not safe for concurrent use.
package motion
