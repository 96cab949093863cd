package configs

import "github.com/cargo-apk/apklinker/framework"

// ReportFormat resolves the dry-run report format. The environment has
// already been folded into OutputFormat by NewConfig; an empty or unknown
// name gives the default table layout.
func (c *Config) ReportFormat() framework.Format {
	if c == nil {
		return framework.FormatDefault
	}
	return framework.NameFormat(c.OutputFormat)
}
