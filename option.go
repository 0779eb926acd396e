package drivererr

import "slices"

type (
	// Option represents a configuration option that can be applied to error definitions.
	Option interface {
		// ApplyOption applies this option to the given applier.
		ApplyOption(o OptionApplier)
	}

	// OptionApplier provides methods for applying options to error definitions.
	OptionApplier interface {
		// SetCode sets the W3C WebDriver error code.
		SetCode(code string)
		// SetStatus sets the legacy JSON wire protocol status.
		SetStatus(status int)
		// AddLegacyStatus adds a legacy status that also maps to the definition.
		AddLegacyStatus(status int)
		// SetSupportURL sets the documentation link.
		SetSupportURL(url string)
		// AddInfo adds a default annotation.
		AddInfo(key, value string)
		// DisableTrace disables stack trace collection.
		DisableTrace()
		// AddStackSkip adds frames to skip during stack trace collection.
		AddStackSkip(skip int)
		// SetEnvironment sets the host environment used for system information.
		SetEnvironment(env Environment)
		// SetBuildInfo sets the build information provider.
		SetBuildInfo(info BuildInfo)
	}

	optionApplier struct {
		def *Definition
	}

	code struct {
		code string
	}

	status struct {
		status int
	}

	legacyStatus struct {
		statuses []int
	}

	supportURL struct {
		url string
	}

	info struct {
		key   string
		value string
	}

	noTrace struct{}

	stackSkip struct {
		skip int
	}

	environment struct {
		env Environment
	}

	buildInfo struct {
		info BuildInfo
	}
)

func (a *optionApplier) SetCode(code string) {
	a.def.code = code
}

func (a *optionApplier) SetStatus(status int) {
	a.def.status = status
	a.def.hasStatus = true
}

func (a *optionApplier) AddLegacyStatus(status int) {
	if !slices.Contains(a.def.legacy, status) {
		a.def.legacy = append(a.def.legacy, status)
	}
}

func (a *optionApplier) SetSupportURL(url string) {
	a.def.supportURL = url
}

func (a *optionApplier) AddInfo(key, value string) {
	a.def.info.set(key, value)
}

func (a *optionApplier) DisableTrace() {
	a.def.noTrace = true
}

func (a *optionApplier) AddStackSkip(skip int) {
	a.def.stackSkip += skip
}

func (a *optionApplier) SetEnvironment(env Environment) {
	a.def.env = env
}

func (a *optionApplier) SetBuildInfo(info BuildInfo) {
	a.def.build = info
}

func (o *code) ApplyOption(a OptionApplier) {
	a.SetCode(o.code)
}

func (o *status) ApplyOption(a OptionApplier) {
	a.SetStatus(o.status)
}

func (o *legacyStatus) ApplyOption(a OptionApplier) {
	for _, s := range o.statuses {
		a.AddLegacyStatus(s)
	}
}

func (o *supportURL) ApplyOption(a OptionApplier) {
	a.SetSupportURL(o.url)
}

func (o *info) ApplyOption(a OptionApplier) {
	a.AddInfo(o.key, o.value)
}

func (o *noTrace) ApplyOption(a OptionApplier) {
	a.DisableTrace()
}

func (o *stackSkip) ApplyOption(a OptionApplier) {
	a.AddStackSkip(o.skip)
}

func (o *environment) ApplyOption(a OptionApplier) {
	a.SetEnvironment(o.env)
}

func (o *buildInfo) ApplyOption(a OptionApplier) {
	a.SetBuildInfo(o.info)
}

func applyOptionsTo(def *Definition, opts []Option) {
	a := &optionApplier{def: def}
	for _, opt := range opts {
		if opt != nil {
			opt.ApplyOption(a)
		}
	}
}
