package utils

import (
	"io"

	ierr "github.com/flexprice/marketdiscount/internal/errors"
	jsoniter "github.com/json-iterator/go"
)

// JSON is the codec shared by the decoder, the host adapter and the tests.
// It matches encoding/json output byte for byte, so struct field order is the wire order.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

// FromJSON converts json bytes to a typed struct
func FromJSON[T any](data []byte) (T, error) {
	var result T

	if err := JSON.Unmarshal(data, &result); err != nil {
		return result, ierr.WithError(err).
			WithHint("Failed to unmarshal JSON to struct").
			Mark(ierr.ErrValidation)
	}

	return result, nil
}

// ReadJSON decodes a single json document from r into a typed struct
func ReadJSON[T any](r io.Reader) (T, error) {
	var result T

	if err := JSON.NewDecoder(r).Decode(&result); err != nil {
		return result, ierr.WithError(err).
			WithHint("Failed to decode JSON document").
			Mark(ierr.ErrValidation)
	}

	return result, nil
}

// ToJSON converts a typed struct to json bytes
func ToJSON[T any](value T) ([]byte, error) {
	data, err := JSON.Marshal(value)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to marshal value to JSON").
			Mark(ierr.ErrSystem)
	}
	return data, nil
}

// WriteJSON encodes value to w followed by a newline
func WriteJSON[T any](w io.Writer, value T) error {
	if err := JSON.NewEncoder(w).Encode(value); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to write JSON document").
			Mark(ierr.ErrSystem)
	}
	return nil
}
