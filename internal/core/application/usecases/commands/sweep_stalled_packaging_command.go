package commands

// SweepStalledPackagingCommand triggers one pass of the packaging
// auto-confirmation sweep. It carries no parameters; the grace period is a
// policy of the handler.
type SweepStalledPackagingCommand struct{}

// NewSweepStalledPackagingCommand creates a command to run one sweep pass.
func NewSweepStalledPackagingCommand() SweepStalledPackagingCommand {
	return SweepStalledPackagingCommand{}
}
