package oloc

// Version is overridden at link time via -ldflags
// "-X github.com/oloc-go/oloc/pkg/oloc.Version=...", the same pattern the
// CLI's version command reports.
var Version = "0.1.0-dev"
