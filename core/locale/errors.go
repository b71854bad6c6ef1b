package locale

import "errors"

var (
	// ErrNoLocales indicates an empty supported-locale list.
	ErrNoLocales = errors.New("locale: no supported locales provided")

	// ErrInvalidLocale indicates a supported code is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("locale: invalid locale code")

	// ErrUnsupportedDefault indicates the default code is missing from the
	// supported list.
	ErrUnsupportedDefault = errors.New("locale: default locale not in supported list")
)
