package motion

import (
	"context"
	"time"

	"github.com/mdrive-go/mdrive-go/pkg/register"
)

// ReadPosition reads the current position.
func (c *Controller) ReadPosition(ctx context.Context) (int32, error) {
	return c.read32(ctx, register.SymbolPosition)
}

// ReadVelocity reads the current axis velocity.
func (c *Controller) ReadVelocity(ctx context.Context) (int32, error) {
	return c.read32(ctx, register.SymbolReadAxisVelocity)
}

// ReadInitialVelocity reads the configured start velocity.
func (c *Controller) ReadInitialVelocity(ctx context.Context) (int32, error) {
	return c.read32(ctx, register.SymbolInitialVelocity)
}

// ReadMaxVelocity reads the configured velocity limit.
func (c *Controller) ReadMaxVelocity(ctx context.Context) (int32, error) {
	return c.read32(ctx, register.SymbolMaxVelocity)
}

// ReadMicrostepResolution reads the microstep resolution.
func (c *Controller) ReadMicrostepResolution(ctx context.Context) (int8, error) {
	addr, err := c.resolve(register.SymbolMicrostepResolution)
	if err != nil {
		return 0, err
	}
	return c.io.Read8(ctx, addr)
}

// ReadMoving reads the moving flag.
func (c *Controller) ReadMoving(ctx context.Context) (bool, error) {
	addr, err := c.resolve(register.SymbolMovingFlag)
	if err != nil {
		return false, err
	}
	return c.io.ReadFlag(ctx, addr)
}

// CurrentPosition returns the position, or 0 if the read fails.
func (c *Controller) CurrentPosition(ctx context.Context) int32 {
	v, _ := c.ReadPosition(ctx)
	return v
}

// CurrentVelocity returns the axis velocity, or 0 if the read fails.
func (c *Controller) CurrentVelocity(ctx context.Context) int32 {
	v, _ := c.ReadVelocity(ctx)
	return v
}

// InitialVelocity returns the start velocity, or 0 if the read fails.
func (c *Controller) InitialVelocity(ctx context.Context) int32 {
	v, _ := c.ReadInitialVelocity(ctx)
	return v
}

// MaxVelocity returns the velocity limit, or 0 if the read fails.
func (c *Controller) MaxVelocity(ctx context.Context) int32 {
	v, _ := c.ReadMaxVelocity(ctx)
	return v
}

// MicrostepResolution returns the microstep resolution, or 0 if the read
// fails.
func (c *Controller) MicrostepResolution(ctx context.Context) int8 {
	v, _ := c.ReadMicrostepResolution(ctx)
	return v
}

// IsMoving reports whether the axis is moving. A failed read reports
// false.
func (c *Controller) IsMoving(ctx context.Context) bool {
	v, _ := c.ReadMoving(ctx)
	return v
}

// SetAbsolutePosition commands a move to target.
func (c *Controller) SetAbsolutePosition(ctx context.Context, target int32) error {
	c.logger.Info("set absolute position", "target", target)
	return c.write32(ctx, register.SymbolPosition, target)
}

// SetInitialVelocity sets the start velocity.
func (c *Controller) SetInitialVelocity(ctx context.Context, v int32) error {
	c.logger.Info("set initial velocity", "value", v)
	return c.write32(ctx, register.SymbolInitialVelocity, v)
}

// SetMaxVelocity sets the velocity limit.
func (c *Controller) SetMaxVelocity(ctx context.Context, v int32) error {
	c.logger.Info("set max velocity", "value", v)
	return c.write32(ctx, register.SymbolMaxVelocity, v)
}

// SetMicrostepResolution sets the microstep resolution.
func (c *Controller) SetMicrostepResolution(ctx context.Context, v int8) error {
	c.logger.Info("set microstep resolution", "value", v)
	addr, err := c.resolve(register.SymbolMicrostepResolution)
	if err != nil {
		return err
	}
	return c.io.Write8(ctx, addr, v)
}

// SaveSettings asks the amplifier to persist its current settings. Success
// means the write was acknowledged, not that persisting has finished.
func (c *Controller) SaveSettings(ctx context.Context) error {
	c.logger.Info("saving settings")
	addr, err := c.resolve(register.SymbolSaveSettings)
	if err != nil {
		return err
	}
	if err := c.io.WriteTrigger(ctx, addr, SaveTrigger); err != nil {
		return err
	}
	c.logger.Info("settings saved")
	return nil
}

// WaitIdle polls the moving flag every interval until it clears or ctx is
// done. A failed read ends the wait with that error.
func (c *Controller) WaitIdle(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		moving, err := c.ReadMoving(ctx)
		if err != nil {
			return err
		}
		if !moving {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Snapshot is a strict read of every readable parameter.
type Snapshot struct {
	Position            int32
	Velocity            int32
	InitialVelocity     int32
	MaxVelocity         int32
	MicrostepResolution int8
	Moving              bool
}

// Snapshot reads all parameters, stopping at the first failure.
func (c *Controller) Snapshot(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	var err error
	if s.Position, err = c.ReadPosition(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.Velocity, err = c.ReadVelocity(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.InitialVelocity, err = c.ReadInitialVelocity(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.MaxVelocity, err = c.ReadMaxVelocity(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.MicrostepResolution, err = c.ReadMicrostepResolution(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.Moving, err = c.ReadMoving(ctx); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}
