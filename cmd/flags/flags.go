package flags

// Values are populated by the root command's persistent flags.
var (
	ConfigFile string
	Listen     string
	PluginsDir string
)
