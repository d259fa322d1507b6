package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills gaps with defaults where that is safe and
// reports everything else as errors or warnings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if strings.TrimSpace(out.Search.DefaultLocation) == "" {
		out.Search.DefaultLocation = "India"
	}
	if out.Search.DescriptionMax == 0 {
		out.Search.DescriptionMax = 200
	}
	if strings.TrimSpace(out.Output.CSVDir) == "" {
		out.Output.CSVDir = "."
	}

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Search.PerSourceLimit <= 0 {
		res.addErr("search.per_source_limit must be > 0")
	} else if out.Search.PerSourceLimit > 25 {
		res.addWarn("search.per_source_limit is high (%d); boards may throttle or block.", out.Search.PerSourceLimit)
	}
	if out.Search.CourtesyDelaySeconds < 0 {
		res.addErr("search.courtesy_delay_seconds must be >= 0")
	}
	if out.Search.RequestTimeoutSeconds <= 0 {
		res.addErr("search.request_timeout_seconds must be > 0")
	}
	if out.Search.DescriptionMax < 0 {
		res.addErr("search.description_max must be >= 0")
	}
	if out.Search.PerHostRPS <= 0 {
		res.addErr("search.per_host_rps must be > 0")
	}
	if out.Search.Burst <= 0 {
		res.addErr("search.burst must be > 0")
	}

	if !out.Sources.TimesJobs.Enabled && !out.Sources.LinkedIn.Enabled &&
		!out.Sources.Apna.Enabled && !out.Sources.Naukri.Enabled {
		res.addErr("no sources enabled: enable at least one of timesjobs, linkedin, apna, naukri")
	}

	if out.Search.Parallel && out.Search.CourtesyDelaySeconds > 0 {
		res.addWarn("search.parallel ignores courtesy_delay_seconds; pacing falls to per_host_rps only.")
	}

	return out, res
}
