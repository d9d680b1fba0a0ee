package i18n

import "errors"

var (
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrEmptyLanguageCode = errors.New("empty language code")

	ErrParsingCancelled  = errors.New("parsing translations cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")

	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrFailedToReadDir      = errors.New("failed to read translation directory")
	ErrNoTranslationFiles   = errors.New("no translation files found")
	ErrUnsupportedExtension = errors.New("unsupported translation file extension")
)
