package drivererr

// Failure kinds reported by WebDriver remote ends.
// Codes follow the W3C WebDriver specification; statuses follow the legacy
// JSON wire protocol.
var (
	ErrWebDriver = Define("webdriver", Code("unknown error"), Status(13))

	ErrNoSuchSession     = Define("no_such_session", Code("invalid session id"), Status(6))
	ErrSessionNotCreated = Define("session_not_created", Code("session not created"), Status(33))
	ErrUnknownCommand    = Define("unknown_command", Code("unknown command"), Status(9))

	ErrNoSuchElement = Define("no_such_element",
		Code("no such element"),
		Status(7),
		SupportURL("no_such_element.html"),
	)
	ErrStaleElementReference = Define("stale_element_reference",
		Code("stale element reference"),
		Status(10),
		SupportURL("stale_element_reference.html"),
	)
	ErrInvalidSelector = Define("invalid_selector",
		Code("invalid selector"),
		Status(32),
		SupportURL("invalid_selector_exception.html"),
	)
	ErrElementNotInteractable = Define("element_not_interactable",
		Code("element not interactable"),
		Status(60),
		LegacyStatus(11),
	)
	ErrInvalidElementState   = Define("invalid_element_state", Code("invalid element state"), Status(12))
	ErrClickIntercepted      = Define("element_click_intercepted", Code("element click intercepted"), Status(64))
	ErrMoveTargetOutOfBounds = Define("move_target_out_of_bounds", Code("move target out of bounds"), Status(34))

	ErrNoSuchFrame  = Define("no_such_frame", Code("no such frame"), Status(8))
	ErrNoSuchWindow = Define("no_such_window", Code("no such window"), Status(23))
	ErrNoSuchAlert  = Define("no_such_alert", Code("no such alert"), Status(27))
	ErrNoSuchCookie = Define("no_such_cookie", Code("no such cookie"), Status(62))

	ErrUnhandledAlert = Define("unhandled_alert", Code("unexpected alert open"), Status(26))
	ErrJavascript     = Define("javascript", Code("javascript error"), Status(17))

	ErrTimeout       = Define("timeout", Code("timeout"), Status(21))
	ErrScriptTimeout = Define("script_timeout", Code("script timeout"), Status(28))

	ErrInvalidArgument      = Define("invalid_argument", Code("invalid argument"), Status(61))
	ErrInvalidCookieDomain  = Define("invalid_cookie_domain", Code("invalid cookie domain"), Status(24))
	ErrUnableToSetCookie    = Define("unable_to_set_cookie", Code("unable to set cookie"), Status(25))
	ErrScreenshot           = Define("screenshot", Code("unable to capture screen"), Status(63))
	ErrUnsupportedOperation = Define("unsupported_operation", Code("unsupported operation"), Status(405))
)

// Definitions returns every predefined failure kind, ErrWebDriver first.
func Definitions() []*Definition {
	return []*Definition{
		ErrWebDriver,
		ErrNoSuchSession,
		ErrSessionNotCreated,
		ErrUnknownCommand,
		ErrNoSuchElement,
		ErrStaleElementReference,
		ErrInvalidSelector,
		ErrElementNotInteractable,
		ErrInvalidElementState,
		ErrClickIntercepted,
		ErrMoveTargetOutOfBounds,
		ErrNoSuchFrame,
		ErrNoSuchWindow,
		ErrNoSuchAlert,
		ErrNoSuchCookie,
		ErrUnhandledAlert,
		ErrJavascript,
		ErrTimeout,
		ErrScriptTimeout,
		ErrInvalidArgument,
		ErrInvalidCookieDomain,
		ErrUnableToSetCookie,
		ErrScreenshot,
		ErrUnsupportedOperation,
	}
}
