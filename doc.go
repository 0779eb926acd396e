/*
Package drivererr provides self-describing errors for browser-automation clients.

An error created by drivererr carries an optional message, an optional cause and,
for failures reported by a remote end, the legacy status code. When its message
is read, the error appends everything needed to diagnose it remotely: a link to
the documentation of the failure kind, the build of the program, a fingerprint
of the host, and any annotations attached while the error propagated.

# Basic Usage

Create errors from one of the predefined kinds, or define your own.

	package myapp

	import "github.com/shiwano/drivererr"

	var ErrPageCrashed = drivererr.Define("page_crashed",
		drivererr.Code("unknown error"),
		drivererr.SupportURL("page_crashed.html"),
	)

	func (d *ChromeDriver) FindElement(ctx context.Context, sel string) (*Element, error) {
		el, err := d.query(ctx, sel)
		if err != nil {
			return nil, drivererr.ErrNoSuchElement.Wrapf(err, "unable to locate %q", sel)
		}
		return el, nil
	}

Printing the error yields a multi-line message:

	unable to locate "#login"
	For documentation on this error, please visit: http://seleniumhq.org/exceptions/no_such_element.html
	Build info: version: 'v1.4.0', revision: '5f1e3a2', time: '2025-01-02T15:04:05Z'
	System info: host: 'ci-7', ip: '10.0.0.7', os.name: 'Linux', os.arch: 'amd64', os.version: '6.8.0', go.version: 'go1.25.0'
	Driver info: driver.version: ChromeDriver

The driver name is inferred from the stack captured at creation: the outermost
frame whose owning type ends in "Driver" wins. See DriverName.

# Annotations

Annotations are ordered key/value pairs. Add them while the error travels up
the call stack, or put them on a context so every error created with
Definition.With carries them.

	ctx = drivererr.ContextWithSession(ctx, sessionID)
	err := drivererr.ErrTimeout.With(ctx).New("page load timed out")
	drivererr.AddInfo(err, "*** Element info", "{Using=id, value=login}")

An annotation whose value already starts with its key is printed without the key.

# Checking errors

Errors match their definition with the standard errors.Is.

	if errors.Is(err, drivererr.ErrStaleElementReference) {
		// find the element again
	}
*/
package drivererr
