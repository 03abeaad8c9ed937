package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/rango"
)

// A Parser decodes and validates request payloads.
type Parser struct {
	formDecoder
	validator
}

// NewParser constructs a *Parser.
func NewParser() *Parser {
	return &Parser{
		formDecoder: newFormDecoder(),
		validator:   newValidator(),
	}
}

// ParseBody decodes into a pointer to a struct the JSON data in body.
// If successful, ParseBody runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("rango/http/req: %w: ParseBody called with non-pointer: %s", rango.ErrUnaddressable, err)
	}

	if err != nil {
		return fmt.Errorf("rango/http/req: %w: failed decoding request body: %s", rango.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("rango/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseForm decodes into a pointer to a struct the URL-encoded form data in r's body.
// If successful, ParseForm runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseForm(r *http.Request, structPtr any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("rango/http/req: %w: failed parsing form: %s", rango.ErrBadFormat, err)
	}

	if err := p.decode(structPtr, r.PostForm); err != nil {
		return fmt.Errorf("rango/http/req: failed decoding form: %w", err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("rango/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseQueryParams decodes into a pointer to a struct the query param data in params.
// If successful, ParseQueryParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.decode(structPtr, params); err != nil {
		return fmt.Errorf("rango/http/req: failed decoding request query params: %w", err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("rango/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
