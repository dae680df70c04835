package suji

// Version and BuildDate are overridable at link time via
// -ldflags "-X github.com/sujilang/suji.Version=... -X github.com/sujilang/suji.BuildDate=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
)
