package drivererr

// Code sets the W3C WebDriver error code, e.g. "no such element".
func Code(c string) Option {
	return &code{code: c}
}

// Status sets the canonical legacy JSON wire protocol status of a definition.
func Status(s int) Option {
	return &status{status: s}
}

// LegacyStatus adds legacy JSON wire protocol statuses that resolve to the
// definition besides its canonical Status. Errors never report them.
func LegacyStatus(s ...int) Option {
	return &legacyStatus{statuses: s}
}

// SupportURL sets the documentation link to BaseSupportURL followed by suffix.
// An empty suffix removes the link.
func SupportURL(suffix string) Option {
	if suffix == "" {
		return &supportURL{}
	}
	return &supportURL{url: BaseSupportURL + suffix}
}

// SupportURLAbsolute sets the documentation link to url as is.
func SupportURLAbsolute(url string) Option {
	return &supportURL{url: url}
}

// Info adds an annotation to every error created from the definition.
func Info(key, value string) Option {
	return &info{key: key, value: value}
}

// Session annotates errors with the id of the session they occurred in.
func Session(id string) Option {
	return Info(SessionID, id)
}

// NoTrace disables stack trace collection.
// Without a stack the driver name is reported as UnknownDriver.
func NoTrace() Option {
	return &noTrace{}
}

// StackSkip adds to the number of frames to skip during stack trace collection.
func StackSkip(skip int) Option {
	return &stackSkip{skip: skip}
}

// WithEnvironment overrides the host environment used for system information.
func WithEnvironment(env Environment) Option {
	return &environment{env: env}
}

// WithBuildInfo overrides the build information provider.
func WithBuildInfo(info BuildInfo) Option {
	return &buildInfo{info: info}
}
