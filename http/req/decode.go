package req

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/rango"
)

type formDecoder struct {
	dec *schema.Decoder
}

func newFormDecoder() formDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return formDecoder{dec: dec}
}

func (d formDecoder) decode(structPtr any, vals url.Values) error {
	if err := d.dec.Decode(structPtr, vals); err != nil {
		return translateDecoderError(err)
	}

	return nil
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some are mismatches between a request's values and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		if strings.Contains(err.Error(), "interface must be a pointer to struct") {
			return fmt.Errorf("%w: %s", rango.ErrUnaddressable, err)
		}

		return fmt.Errorf("%w: %s", rango.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				// NOTE: For non-slice values, err.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			})

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use validate pkg to set "required" fields, not schema`, rango.ErrNotImplemented)

		case schema.UnknownKeyError:
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			})

		default:
			// NOTE: a field whose type has no schema.Converter registered
			// only errors once a value for that field is decoded.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", rango.ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", rango.ErrUnexpected, err)
		}
	}

	return validErrs
}
