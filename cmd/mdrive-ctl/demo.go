package main

import (
	"context"
	"fmt"
	"io"
	"time"
)

// mover is the part of motion.Controller the demo sequence needs.
type mover interface {
	SetAbsolutePosition(ctx context.Context, target int32) error
	IsMoving(ctx context.Context) bool
}

// runDemo asks for a target, moves there, then moves back to zero. After
// each commanded move it reports the moving flag, waits settle and
// reports it again.
func runDemo(ctx context.Context, m mover, in io.Reader, out io.Writer, settle time.Duration) error {
	fmt.Fprint(out, "Enter rotational amount: ")
	var target int32
	if _, err := fmt.Fscan(in, &target); err != nil {
		return fmt.Errorf("read target: %w", err)
	}

	for _, pos := range []int32{target, 0} {
		if err := m.SetAbsolutePosition(ctx, pos); err != nil {
			fmt.Fprintf(out, "Move to %d failed: %v\n", pos, err)
			continue
		}
		fmt.Fprintf(out, "Successfully commanded move to %d\nWaiting for move to complete...\n", pos)
		fmt.Fprintf(out, "Moving flag: %t\n", m.IsMoving(ctx))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(settle):
		}
		fmt.Fprintf(out, "Moving flag: %t\n", m.IsMoving(ctx))
	}

	fmt.Fprintln(out, "Motor control sequence finished")
	return nil
}
