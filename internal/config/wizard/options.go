package wizard

import "github.com/charmbracelet/huh"

// RegionOptions are the home regions commonly used for A1 capacity hunting.
// The free input fallback stays available through the config file.
var RegionOptions = []huh.Option[string]{
	huh.NewOption("Use profile region (recommended)", ""),
	huh.NewOption("eu-frankfurt-1", "eu-frankfurt-1"),
	huh.NewOption("eu-amsterdam-1", "eu-amsterdam-1"),
	huh.NewOption("uk-london-1", "uk-london-1"),
	huh.NewOption("us-ashburn-1", "us-ashburn-1"),
	huh.NewOption("us-phoenix-1", "us-phoenix-1"),
	huh.NewOption("ap-tokyo-1", "ap-tokyo-1"),
	huh.NewOption("ap-singapore-1", "ap-singapore-1"),
}

// OcpuOptions cover the A1.Flex sizes up to the always-free allotment.
var OcpuOptions = []huh.Option[int]{
	huh.NewOption("1 OCPU / 6 GB", 1),
	huh.NewOption("2 OCPUs / 12 GB", 2),
	huh.NewOption("3 OCPUs / 18 GB", 3),
	huh.NewOption("4 OCPUs / 24 GB (always-free maximum)", 4),
}

// IntervalOptions are retry cadence presets in seconds.
var IntervalOptions = []huh.Option[int]{
	huh.NewOption("30s (aggressive)", 30),
	huh.NewOption("60s (recommended)", 60),
	huh.NewOption("120s (gentle)", 120),
}
