package jsonquery

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// DecodeOptions builds Options out of a loosely typed map, like the contents of a
// config file. Keys match the field tags case-insensitively, strings are converted to
// the field types where possible, and a comma separated string is accepted for
// ignoreFields. Unknown keys are an error.
func DecodeOptions(raw map[string]interface{}) (*Options, error) {
	options := &Options{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           options,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}

	return options, nil
}
